// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/camera-collector/internal/logger"
)

// StorePinger periodically pings the database so that a lost connection is
// visible in the logs before the next request fails with a 503.
type StorePinger struct {
	pinger   Pinger
	interval time.Duration
	logger   *logger.Logger
}

func NewStorePinger(pinger Pinger, interval time.Duration, logger *logger.Logger) *StorePinger {
	return &StorePinger{pinger: pinger, interval: interval, logger: logger}
}

// Run pings the store once immediately and then on every interval tick until
// the context is cancelled.
func (p *StorePinger) Run(ctx context.Context) {
	p.ping(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.ping(ctx)
		}
	}
}

func (p *StorePinger) ping(ctx context.Context) {
	if err := p.pinger.PingContext(ctx); err != nil {
		p.logger.Warn().Err(err).Str("func", "StorePinger.ping").Msg("store is unreachable")
		return
	}
	p.logger.Debug().Str("func", "StorePinger.ping").Msg("store is reachable")
}
