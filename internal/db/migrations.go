package db

import (
	"fmt"

	"gorm.io/gorm"
)

var migrationStatements = []string{
	`CREATE EXTENSION IF NOT EXISTS "pgcrypto";`,
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'contract_state') THEN
			CREATE TYPE contract_state AS ENUM ('DRAFT', 'ACCEPTED', 'TERMINATED');
		END IF;
		IF NOT EXISTS (SELECT 1 FROM pg_type WHERE typname = 'contract_reviewer') THEN
			CREATE TYPE contract_reviewer AS ENUM ('EMPLOYER', 'CANDIDATE');
		END IF;
	END
	$$;`,
	`CREATE TABLE IF NOT EXISTS contracts (
		id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
		candidate_net_id VARCHAR(50) NOT NULL,
		state contract_state NOT NULL DEFAULT 'DRAFT',
		reviewer contract_reviewer NOT NULL DEFAULT 'CANDIDATE',
		start_date DATE NOT NULL,
		end_date DATE,
		hours_per_week INTEGER NOT NULL CHECK (hours_per_week > 0),
		vacation_days INTEGER NOT NULL CHECK (vacation_days > 0),
		salary_scale INTEGER NOT NULL DEFAULT 0 CHECK (salary_scale >= 0),
		salary_step INTEGER NOT NULL DEFAULT 0 CHECK (salary_step >= 0),
		additional_benefits TEXT NOT NULL DEFAULT '',
		pension_scheme TEXT NOT NULL DEFAULT '',
		position TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CONSTRAINT chk_contract_dates CHECK (end_date IS NULL OR end_date >= start_date)
	);`,
	`DO $$
	BEGIN
		IF NOT EXISTS (SELECT 1 FROM information_schema.columns WHERE table_name = 'contracts' AND column_name = 'position') THEN
			ALTER TABLE contracts ADD COLUMN position TEXT NOT NULL DEFAULT '';
		END IF;
		IF NOT EXISTS (SELECT 1 FROM information_schema.columns WHERE table_name = 'contracts' AND column_name = 'updated_at') THEN
			ALTER TABLE contracts ADD COLUMN updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW();
		END IF;
	END
	$$;`,
	`CREATE INDEX IF NOT EXISTS idx_contracts_candidate_net_id ON contracts (candidate_net_id);`,
	`CREATE INDEX IF NOT EXISTS idx_contracts_state ON contracts (state);`,
	`CREATE INDEX IF NOT EXISTS idx_contracts_start_date ON contracts (start_date);`,
}

func runMigrations(db *gorm.DB) error {
	for i, stmt := range migrationStatements {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}
	return nil
}
