package database

import (
	"context"
	"time"

	"github.com/kamva/mgm/v3"
	"github.com/orbitalswap/points-service/logging"
	"github.com/orbitalswap/points-service/shared"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func ConnectDB(dbName string, mongoAddr string) error {
	err := mgm.SetDefaultConfig(&mgm.Config{CtxTimeout: 5 * shared.DB_OPERATION_TIMEOUT}, dbName, options.Client().ApplyURI(mongoAddr))
	if err != nil {
		return err
	}
	err = DBPing(context.Background())
	if err != nil {
		return err
	}
	lg := logging.Logger()
	lg.Info().Str("db", dbName).Msg("database connected")
	return nil
}

func DBPing(ctx context.Context) error {
	_, cd, _, err := mgm.DefaultConfigs()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, shared.DB_OPERATION_TIMEOUT)
	defer cancel()
	return cd.Ping(ctx, nil)
}

func DBCreateCampaignIndex() error {
	startTime := time.Now()
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(5)*shared.DB_OPERATION_TIMEOUT)
	defer cancel()
	campaignMdl := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "campaignid", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}
	_, err := mgm.Coll(&shared.CampaignData{}).Indexes().CreateMany(ctx, campaignMdl)
	if err != nil {
		lg := logging.Logger()
		lg.Error().Err(err).Dur("elapsed", time.Since(startTime)).Msg("failed to index campaigns")
		return err
	}

	ifoMdl := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "address", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "campaignid", Value: 1}},
		},
	}
	_, err = mgm.Coll(&shared.IfoData{}).Indexes().CreateMany(ctx, ifoMdl)
	if err != nil {
		lg := logging.Logger()
		lg.Error().Err(err).Dur("elapsed", time.Since(startTime)).Msg("failed to index ifos")
		return err
	}
	lg := logging.Logger()
	lg.Info().Dur("elapsed", time.Since(startTime)).Msg("campaign indexes created")
	return nil
}
