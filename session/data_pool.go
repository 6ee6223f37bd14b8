/*
 * Copyright (C) 2025 Google LLC
 *
 * Licensed under the Apache License, Version 2.0 (the "License"); you may not
 * use this file except in compliance with the License. You may obtain a copy of
 * the License at
 *
 *   http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS, WITHOUT
 * WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the
 * License for the specific language governing permissions and limitations under
 * the License.
 */

// Package session manages the lifetime of shared Bigtable data clients.
package session

import (
	"context"
	"sync"

	bigtableclient "github.com/GoogleCloudPlatform/cloud-bigtable-ecosystem/hbase-migration-tools/hbase-bigtable-adapter/bigtable"
	"github.com/GoogleCloudPlatform/cloud-bigtable-ecosystem/hbase-migration-tools/hbase-bigtable-adapter/global/config"
	"go.uber.org/zap"
)

// Client is the subset of the data client surface the pool manages.
type Client interface {
	Close() error
}

// NewClientFunc creates a data client for a config. Injectable so the pool is
// testable without network access.
type NewClientFunc func(ctx context.Context, cfg *config.ConnectionConfig) (Client, error)

// DataPool shares data clients between callers whose configurations compare
// equal, with reference counted lifetimes. Sharing cuts channel startup cost
// for workloads that open many logical connections against the same instance,
// which happens frequently in Dataflow. Configs that do not opt in via
// UseCachedDataPool always get a dedicated client.
type DataPool struct {
	mu        sync.Mutex
	logger    *zap.Logger
	newClient NewClientFunc
	entries   []*poolEntry
}

type poolEntry struct {
	config *config.ConnectionConfig
	client Client
	refs   int
}

// PooledClient is one caller's handle on a possibly shared client. Close
// releases the reference; the underlying client closes when the last
// reference is released.
type PooledClient struct {
	Client  Client
	release func() error
}

func (p *PooledClient) Close() error {
	return p.release()
}

func NewDataPool(logger *zap.Logger, newClient NewClientFunc) *DataPool {
	return &DataPool{logger: logger, newClient: newClient}
}

// NewBigtableDataPool returns a pool backed by real Bigtable data clients.
func NewBigtableDataPool(logger *zap.Logger) *DataPool {
	return NewDataPool(logger, func(ctx context.Context, cfg *config.ConnectionConfig) (Client, error) {
		return bigtableclient.NewDataClient(ctx, logger, cfg)
	})
}

// Acquire returns a client for cfg, reusing a pooled one when cfg opts into
// caching and an equal config is already pooled.
func (p *DataPool) Acquire(ctx context.Context, cfg *config.ConnectionConfig) (*PooledClient, error) {
	if !cfg.UseCachedDataPool() {
		client, err := p.newClient(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return &PooledClient{Client: client, release: client.Close}, nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	for _, entry := range p.entries {
		if entry.config.Equal(cfg) {
			entry.refs++
			p.logger.Debug("reusing pooled data client", zap.Int("refs", entry.refs))
			return &PooledClient{Client: entry.client, release: p.releaseFunc(entry)}, nil
		}
	}

	client, err := p.newClient(ctx, cfg)
	if err != nil {
		return nil, err
	}
	entry := &poolEntry{config: cfg, client: client, refs: 1}
	p.entries = append(p.entries, entry)
	return &PooledClient{Client: client, release: p.releaseFunc(entry)}, nil
}

func (p *DataPool) releaseFunc(entry *poolEntry) func() error {
	return func() error {
		p.mu.Lock()
		defer p.mu.Unlock()

		entry.refs--
		if entry.refs > 0 {
			return nil
		}
		for i, e := range p.entries {
			if e == entry {
				p.entries = append(p.entries[:i], p.entries[i+1:]...)
				break
			}
		}
		return entry.client.Close()
	}
}

// Size reports how many distinct configurations are currently pooled.
func (p *DataPool) Size() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.entries)
}
