package db

import (
	"context"
	"fmt"
	"log"

	"github.com/uptrace/bun"

	"ultraai/internal/db/models"
)

type Migrator struct {
	db *bun.DB
}

func NewMigrator(db *bun.DB) *Migrator {
	return &Migrator{db: db}
}

func (m *Migrator) AutoMigrate(ctx context.Context) error {
	log.Println("🔄 Iniciando migrações automáticas com modelos Bun...")

	models := []interface{}{
		(*models.User)(nil),
		(*models.Webhook)(nil),
	}

	for _, model := range models {
		if err := m.createTableFromModel(ctx, model); err != nil {
			return fmt.Errorf("erro ao migrar modelo %T: %w", model, err)
		}
	}

	log.Println("✅ Migrações automáticas concluídas com sucesso")
	return nil
}

func (m *Migrator) createTableFromModel(ctx context.Context, model interface{}) error {
	tableName := m.getTableName(model)

	_, err := m.db.NewCreateTable().
		Model(model).
		IfNotExists().
		Exec(ctx)

	if err != nil {
		return fmt.Errorf("falha ao criar tabela %s: %w", tableName, err)
	}

	return nil
}

func (m *Migrator) getTableName(model interface{}) string {
	switch model.(type) {
	case *models.User:
		return "users"
	case *models.Webhook:
		return "webhooks"
	default:
		return "unknown"
	}
}

func (m *Migrator) DropAllTables(ctx context.Context) error {
	log.Println("🗑️  ATENÇÃO: Removendo todas as tabelas...")

	models := []interface{}{
		(*models.Webhook)(nil),
		(*models.User)(nil),
	}

	for _, model := range models {
		tableName := m.getTableName(model)
		_, err := m.db.NewDropTable().
			Model(model).
			IfExists().
			Cascade().
			Exec(ctx)
		if err != nil {
			return fmt.Errorf("falha ao remover tabela %s: %w", tableName, err)
		}
	}

	log.Println("✅ Todas as tabelas foram removidas")
	return nil
}
