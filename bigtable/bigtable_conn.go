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

package bigtableclient

import (
	"context"
	"fmt"

	"cloud.google.com/go/bigtable"
	"github.com/GoogleCloudPlatform/cloud-bigtable-ecosystem/hbase-migration-tools/hbase-bigtable-adapter/global/config"
	"go.uber.org/zap"
	"google.golang.org/api/option"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

const maxMessageSize = 1024 * 1024 * 10 // 10 MB max message size

// clientOptions translates a ConnectionConfig into client options shared by
// the data and admin clients. host selects which endpoint the client dials.
func clientOptions(cfg *config.ConnectionConfig, host string) []option.ClientOption {
	opts := []option.ClientOption{
		option.WithEndpoint(fmt.Sprintf("%s:%d", host, cfg.Port())),
	}
	if cfg.UserAgent() != "" {
		opts = append(opts, option.WithUserAgent(cfg.UserAgent()))
	}
	if cfg.UsePlaintextNegotiation() {
		opts = append(opts, option.WithGRPCDialOption(grpc.WithTransportCredentials(insecure.NewCredentials())))
	}
	switch cfg.CredentialSpec().Type() {
	case config.CredentialTypeJSONFile:
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialSpec().JSONKeyPath()))
	case config.CredentialTypeNone:
		opts = append(opts, option.WithoutAuthentication())
	}
	return opts
}

// NewDataClient initializes a Bigtable data client for the configured
// instance, with a gRPC connection pool sized by the data channel count and
// the configured app profile.
func NewDataClient(ctx context.Context, logger *zap.Logger, cfg *config.ConnectionConfig) (*bigtable.Client, error) {
	opts := append(clientOptions(cfg, cfg.DataHost()),
		option.WithGRPCConnectionPool(cfg.DataChannelCount()),
		option.WithGRPCDialOption(grpc.WithDefaultCallOptions(grpc.MaxCallRecvMsgSize(maxMessageSize))),
	)

	logger.Debug("creating bigtable data client",
		zap.String("dataHost", cfg.DataHost()),
		zap.String("instance", cfg.InstanceID()),
		zap.Int("channels", cfg.DataChannelCount()))

	client, err := bigtable.NewClientWithConfig(ctx, cfg.ProjectID(), cfg.InstanceID(), bigtable.ClientConfig{
		AppProfile: cfg.AppProfileID(),
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create bigtable data client for instance %s: %w", cfg.InstanceID(), err)
	}
	return client, nil
}

// NewAdminClient initializes a Bigtable table admin client against the
// configured admin endpoint.
func NewAdminClient(ctx context.Context, logger *zap.Logger, cfg *config.ConnectionConfig) (*bigtable.AdminClient, error) {
	logger.Debug("creating bigtable admin client",
		zap.String("adminHost", cfg.AdminHost()),
		zap.String("instance", cfg.InstanceID()))

	client, err := bigtable.NewAdminClient(ctx, cfg.ProjectID(), cfg.InstanceID(), clientOptions(cfg, cfg.AdminHost())...)
	if err != nil {
		return nil, fmt.Errorf("failed to create bigtable admin client for instance %s: %w", cfg.InstanceID(), err)
	}
	return client, nil
}
