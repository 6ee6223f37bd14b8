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

// schema-translator reads a YAML file of HBase table descriptors, translates
// them to the Bigtable representation and creates the tables on the target
// instance.
package main

import (
	"context"
	"fmt"
	"os"

	"cloud.google.com/go/bigtable"
	"github.com/GoogleCloudPlatform/cloud-bigtable-ecosystem/hbase-migration-tools/hbase-bigtable-adapter/adapters"
	bigtableclient "github.com/GoogleCloudPlatform/cloud-bigtable-ecosystem/hbase-migration-tools/hbase-bigtable-adapter/bigtable"
	"github.com/GoogleCloudPlatform/cloud-bigtable-ecosystem/hbase-migration-tools/hbase-bigtable-adapter/global/config"
	"github.com/GoogleCloudPlatform/cloud-bigtable-ecosystem/hbase-migration-tools/hbase-bigtable-adapter/utilities"
	"github.com/alecthomas/kong"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const releaseVersion = "0.1.0"

type cliArgs struct {
	ProjectId      string   `help:"Google Cloud Project Id to use." required:""`
	InstanceId     string   `help:"Bigtable Instance Id to use." required:""`
	AppProfile     string   `help:"Bigtable App Profile to use."`
	Emulator       string   `help:"Redirect all endpoints to a local emulator at host:port."`
	CredentialFile string   `help:"Path to a service account JSON key file. Defaults to application default credentials."`
	Schema         *os.File `help:"YAML file describing the HBase tables to translate." short:"f" required:""`
	LogLevel       string   `help:"Log level configuration." default:"info" env:"LOG_LEVEL"`
	DryRun         bool     `help:"Print the translated schema without creating tables."`
}

func main() {
	var args cliArgs
	parsed := kong.Parse(&args)

	logger, err := utilities.NewLogger(args.LogLevel, nil)
	parsed.FatalIfErrorf(err)
	defer func() { _ = logger.Sync() }()

	err = run(context.Background(), logger, &args)
	parsed.FatalIfErrorf(err)
}

func run(ctx context.Context, logger *zap.Logger, args *cliArgs) error {
	specs, err := readSchemaFile(args.Schema.Name())
	if err != nil {
		return err
	}

	builder := config.NewBuilder().
		SetProjectID(args.ProjectId).
		SetInstanceID(args.InstanceId).
		SetAppProfileID(args.AppProfile).
		SetUserAgent("hbase-schema-translator/" + releaseVersion)
	if args.CredentialFile != "" {
		builder.SetCredentialSpec(config.JSONFileCredentials(args.CredentialFile))
	}
	if args.Emulator != "" {
		if err = builder.EnableEmulator(args.Emulator); err != nil {
			return err
		}
	}
	cfg, err := builder.Build()
	if err != nil {
		return err
	}
	logger.Info("resolved connection configuration", zap.String("config", cfg.String()))

	adapter := adapters.NewTableAdapter()
	if args.DryRun {
		for _, spec := range specs {
			printDescriptor(adapter.Adapt(spec))
		}
		return nil
	}

	adminClient, err := bigtableclient.NewAdminClient(ctx, logger, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = adminClient.Close() }()

	tracer := otel.Tracer("hbase-schema-translator")
	for _, spec := range specs {
		descriptor := adapter.Adapt(spec)
		err = createTable(ctx, tracer, adminClient, descriptor)
		if err != nil {
			return fmt.Errorf("failed to create table %s: %w", descriptor.Name, err)
		}
		logger.Info("created table",
			zap.String("table", descriptor.Name),
			zap.Int("columnFamilies", len(descriptor.ColumnFamilies)))
	}
	return nil
}

func createTable(ctx context.Context, tracer trace.Tracer, adminClient *bigtable.AdminClient, descriptor *bigtableclient.TableDescriptor) error {
	ctx, span := tracer.Start(ctx, "CreateTable",
		trace.WithAttributes(attribute.String("table", descriptor.Name)))
	defer span.End()

	families := make(map[string]bigtable.Family, len(descriptor.ColumnFamilies))
	for name := range descriptor.ColumnFamilies {
		families[name] = bigtable.Family{GCPolicy: bigtable.NoGcPolicy()}
	}

	err := adminClient.CreateTableFromConf(ctx, &bigtable.TableConf{
		TableID:        descriptor.Name,
		ColumnFamilies: families,
	})
	if status.Code(err) == codes.AlreadyExists {
		return fmt.Errorf("table %s already exists", descriptor.Name)
	}
	return err
}

func printDescriptor(descriptor *bigtableclient.TableDescriptor) {
	fmt.Printf("table: %s\n", descriptor.Name)
	for name, family := range descriptor.ColumnFamilies {
		fmt.Printf("  column family: %s (config entries: %d, metadata entries: %d)\n",
			name, len(family.Config), len(family.Metadata))
	}
}
