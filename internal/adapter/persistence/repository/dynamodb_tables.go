package repository

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"time"

	"relatorio_ronda/internal/infrastructure/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/rs/zerolog/log"
)

type tableDef struct {
	name    string
	key     string
	keyType types.ScalarAttributeType
	indexes map[string]types.ScalarAttributeType
}

const tableWait = 2 * time.Minute

func tableDefs(tables config.DynamoDBTables) []tableDef {
	return []tableDef{
		{name: tables.Empresas, key: "id", keyType: types.ScalarAttributeTypeN, indexes: map[string]types.ScalarAttributeType{
			"nome": types.ScalarAttributeTypeS,
		}},
		{name: tables.Usuarios, key: "id", keyType: types.ScalarAttributeTypeN, indexes: map[string]types.ScalarAttributeType{
			"nome":       types.ScalarAttributeTypeS,
			"email":      types.ScalarAttributeTypeS,
			"empresa_id": types.ScalarAttributeTypeN,
		}},
		{name: tables.Relatorios, key: "id", keyType: types.ScalarAttributeTypeN, indexes: map[string]types.ScalarAttributeType{
			"empresa_id":   types.ScalarAttributeTypeN,
			"vigilante_id": types.ScalarAttributeTypeN,
		}},
		{name: tables.Voltas, key: "id", keyType: types.ScalarAttributeTypeN, indexes: map[string]types.ScalarAttributeType{
			"relatorio_ronda_id": types.ScalarAttributeTypeN,
		}},
		{name: tables.Contadores, key: "nome", keyType: types.ScalarAttributeTypeS},
	}
}

// EnsureDynamoTables creates every missing table with its indexes, on-demand
// billed. Existing tables are left untouched.
func EnsureDynamoTables(ctx context.Context, ddb *dynamodb.Client, tables config.DynamoDBTables) error {
	for _, def := range tableDefs(tables) {
		created, err := ensureTable(ctx, ddb, def)
		if err != nil {
			return fmt.Errorf("ensure table %s: %w", def.name, err)
		}
		log.Info().Str("table", def.name).Bool("created", created).Msg("dynamodb table ready")
	}
	return nil
}

func ensureTable(ctx context.Context, ddb *dynamodb.Client, def tableDef) (bool, error) {
	_, err := ddb.DescribeTable(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(def.name)})
	if err == nil {
		return false, nil
	}
	var notFound *types.ResourceNotFoundException
	if !errors.As(err, &notFound) {
		return false, err
	}

	if _, err := ddb.CreateTable(ctx, createTableInput(def)); err != nil {
		return false, err
	}
	waiter := dynamodb.NewTableExistsWaiter(ddb)
	return true, waiter.Wait(ctx, &dynamodb.DescribeTableInput{TableName: aws.String(def.name)}, tableWait)
}

func createTableInput(def tableDef) *dynamodb.CreateTableInput {
	attrs := []types.AttributeDefinition{{AttributeName: aws.String(def.key), AttributeType: def.keyType}}
	var gsis []types.GlobalSecondaryIndex
	for _, attr := range slices.Sorted(maps.Keys(def.indexes)) {
		attrs = append(attrs, types.AttributeDefinition{AttributeName: aws.String(attr), AttributeType: def.indexes[attr]})
		gsis = append(gsis, types.GlobalSecondaryIndex{
			IndexName:  aws.String(attr + "-index"),
			KeySchema:  []types.KeySchemaElement{{AttributeName: aws.String(attr), KeyType: types.KeyTypeHash}},
			Projection: &types.Projection{ProjectionType: types.ProjectionTypeAll},
		})
	}
	return &dynamodb.CreateTableInput{
		TableName:              aws.String(def.name),
		AttributeDefinitions:   attrs,
		KeySchema:              []types.KeySchemaElement{{AttributeName: aws.String(def.key), KeyType: types.KeyTypeHash}},
		GlobalSecondaryIndexes: gsis,
		BillingMode:            types.BillingModePayPerRequest,
	}
}
