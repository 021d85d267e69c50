package database

import (
	"context"
	"time"

	"github.com/kamva/mgm/v3"
	"github.com/kamva/mgm/v3/operator"
	"github.com/orbitalswap/points-service/shared"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func DBSaveCampaigns(list []shared.CampaignData) error {
	for _, v := range list {
		ctx, cancel := context.WithTimeout(context.Background(), shared.DB_OPERATION_TIMEOUT)
		filter := bson.M{"campaignid": bson.M{operator.Eq: v.CampaignID}}
		doc := bson.M{
			operator.Set: bson.M{
				"campaignid":  v.CampaignID,
				"type":        v.Type,
				"title":       v.Title,
				"description": v.Description,
				"badge":       v.Badge,
				"isactive":    v.IsActive,
				"updated_at":  time.Now().UTC(),
			},
			operator.SetOnInsert: bson.M{"created_at": time.Now().UTC()},
		}
		_, err := mgm.Coll(&shared.CampaignData{}).UpdateOne(ctx, filter, doc, mgm.UpsertTrueOption())
		cancel()
		if err != nil {
			return err
		}
	}
	return nil
}

// DBGetCampaigns returns every stored campaign row, inactive ones included.
func DBGetCampaigns() ([]shared.CampaignData, error) {
	list := []shared.CampaignData{}
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(5)*shared.DB_OPERATION_TIMEOUT)
	defer cancel()
	err := mgm.Coll(&shared.CampaignData{}).SimpleFindWithCtx(ctx, &list, bson.M{}, &options.FindOptions{
		Sort: bson.D{{Key: "created_at", Value: 1}},
	})
	if err != nil {
		return nil, err
	}
	return list, nil
}

// DBDeactivateCampaigns marks the campaigns inactive, inserting a bare row for
// ids that were never stored so built-in campaigns can be retired too.
func DBDeactivateCampaigns(campaignIDs []string) error {
	for _, id := range campaignIDs {
		ctx, cancel := context.WithTimeout(context.Background(), shared.DB_OPERATION_TIMEOUT)
		filter := bson.M{"campaignid": bson.M{operator.Eq: id}}
		doc := bson.M{
			operator.Set:         bson.M{"isactive": false, "updated_at": time.Now().UTC()},
			operator.SetOnInsert: bson.M{"created_at": time.Now().UTC()},
		}
		_, err := mgm.Coll(&shared.CampaignData{}).UpdateOne(ctx, filter, doc, mgm.UpsertTrueOption())
		cancel()
		if err != nil {
			return err
		}
	}
	return nil
}

func DBSaveIfos(list []shared.IfoData) error {
	for _, v := range list {
		ctx, cancel := context.WithTimeout(context.Background(), shared.DB_OPERATION_TIMEOUT)
		filter := bson.M{"address": bson.M{operator.Eq: v.Address}}
		doc := bson.M{
			operator.Set: bson.M{
				"ifoid":      v.IfoID,
				"address":    v.Address,
				"campaignid": v.CampaignID,
				"isactive":   v.IsActive,
				"updated_at": time.Now().UTC(),
			},
			operator.SetOnInsert: bson.M{"created_at": time.Now().UTC()},
		}
		_, err := mgm.Coll(&shared.IfoData{}).UpdateOne(ctx, filter, doc, mgm.UpsertTrueOption())
		cancel()
		if err != nil {
			return err
		}
	}
	return nil
}

// DBGetIfos returns every stored ifo row in insertion order, inactive ones included.
func DBGetIfos() ([]shared.IfoData, error) {
	list := []shared.IfoData{}
	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(5)*shared.DB_OPERATION_TIMEOUT)
	defer cancel()
	err := mgm.Coll(&shared.IfoData{}).SimpleFindWithCtx(ctx, &list, bson.M{}, &options.FindOptions{
		Sort: bson.D{{Key: "created_at", Value: 1}},
	})
	if err != nil {
		return nil, err
	}
	return list, nil
}

// DBDeactivateIfos marks the ifos inactive, inserting a bare row for addresses
// that were never stored. Addresses are expected in checksum form.
func DBDeactivateIfos(addresses []string) error {
	for _, addr := range addresses {
		ctx, cancel := context.WithTimeout(context.Background(), shared.DB_OPERATION_TIMEOUT)
		filter := bson.M{"address": bson.M{operator.Eq: addr}}
		doc := bson.M{
			operator.Set:         bson.M{"isactive": false, "updated_at": time.Now().UTC()},
			operator.SetOnInsert: bson.M{"created_at": time.Now().UTC()},
		}
		_, err := mgm.Coll(&shared.IfoData{}).UpdateOne(ctx, filter, doc, mgm.UpsertTrueOption())
		cancel()
		if err != nil {
			return err
		}
	}
	return nil
}
