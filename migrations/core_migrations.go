package migrations

import "gorm.io/gorm"

func GetCoreMigrations() []MigrationDefinition {
	return []MigrationDefinition{
		{
			Name: "2026_02_10_000000_create_tournament_tables",
			Up: func(db *gorm.DB) error {
				// Create users table
				if err := db.Exec(`
					CREATE TABLE IF NOT EXISTS users (
						id BIGSERIAL PRIMARY KEY,
						external_id VARCHAR(255) NOT NULL UNIQUE,
						fullname VARCHAR(255) NOT NULL,
						photo_url VARCHAR(512) NULL,
						created_at TIMESTAMP DEFAULT NOW(),
						updated_at TIMESTAMP DEFAULT NOW()
					);
				`).Error; err != nil {
					return err
				}

				// Create championships table
				if err := db.Exec(`
					CREATE TABLE IF NOT EXISTS championships (
						id BIGSERIAL PRIMARY KEY,
						name VARCHAR(255) NOT NULL,
						status VARCHAR(20) NOT NULL DEFAULT 'active' CHECK (status IN ('active', 'inactive')),
						start_date TIMESTAMP NULL,
						created_at TIMESTAMP DEFAULT NOW(),
						updated_at TIMESTAMP DEFAULT NOW()
					);
				`).Error; err != nil {
					return err
				}

				// Create user_championships table (roster memberships)
				if err := db.Exec(`
					CREATE TABLE IF NOT EXISTS user_championships (
						id BIGSERIAL PRIMARY KEY,
						user_id BIGINT NOT NULL,
						championship_id BIGINT NOT NULL,
						status VARCHAR(20) NOT NULL DEFAULT 'active' CHECK (status IN ('active', 'eliminated')),
						created_at TIMESTAMP DEFAULT NOW(),
						updated_at TIMESTAMP DEFAULT NOW(),
						FOREIGN KEY (user_id) REFERENCES users(id) ON DELETE CASCADE,
						FOREIGN KEY (championship_id) REFERENCES championships(id) ON DELETE CASCADE
					);
					CREATE UNIQUE INDEX IF NOT EXISTS uniq_user_championship ON user_championships(user_id, championship_id);
				`).Error; err != nil {
					return err
				}

				// Create pairings table
				if err := db.Exec(`
					CREATE TABLE IF NOT EXISTS pairings (
						id BIGSERIAL PRIMARY KEY,
						championship_id BIGINT NOT NULL,
						player1_id BIGINT NOT NULL,
						player2_id BIGINT NOT NULL,
						player1_wins INT NOT NULL DEFAULT 0,
						player2_wins INT NOT NULL DEFAULT 0,
						status VARCHAR(20) NOT NULL DEFAULT 'active' CHECK (status IN ('active', 'eliminated')),
						created_at TIMESTAMP DEFAULT NOW(),
						updated_at TIMESTAMP DEFAULT NOW(),
						CONSTRAINT chk_distinct_players CHECK (player1_id <> player2_id),
						FOREIGN KEY (championship_id) REFERENCES championships(id) ON DELETE CASCADE,
						FOREIGN KEY (player1_id) REFERENCES users(id) ON DELETE CASCADE,
						FOREIGN KEY (player2_id) REFERENCES users(id) ON DELETE CASCADE
					);
					CREATE UNIQUE INDEX IF NOT EXISTS uniq_championship_pairing ON pairings(championship_id, player1_id, player2_id);
					CREATE INDEX IF NOT EXISTS idx_pairings_player1_id ON pairings(player1_id);
					CREATE INDEX IF NOT EXISTS idx_pairings_player2_id ON pairings(player2_id);
				`).Error; err != nil {
					return err
				}

				// Create games table
				if err := db.Exec(`
					CREATE TABLE IF NOT EXISTS games (
						id BIGSERIAL PRIMARY KEY,
						external_id VARCHAR(255) NOT NULL UNIQUE,
						pairing_id BIGINT NOT NULL,
						round_number INT NOT NULL CHECK (round_number > 0),
						winner_id BIGINT NULL,
						started BOOLEAN NOT NULL DEFAULT FALSE,
						is_finished BOOLEAN NOT NULL DEFAULT FALSE,
						created_at TIMESTAMP DEFAULT NOW(),
						updated_at TIMESTAMP DEFAULT NOW(),
						FOREIGN KEY (pairing_id) REFERENCES pairings(id) ON DELETE CASCADE,
						FOREIGN KEY (winner_id) REFERENCES users(id)
					);
					CREATE UNIQUE INDEX IF NOT EXISTS uniq_pairing_round ON games(pairing_id, round_number);
					CREATE INDEX IF NOT EXISTS idx_games_is_finished ON games(is_finished);
				`).Error; err != nil {
					return err
				}

				return nil
			},
			Down: func(db *gorm.DB) error {
				// Drop tables in reverse order (because of foreign keys)
				if err := db.Exec("DROP TABLE IF EXISTS games CASCADE").Error; err != nil {
					return err
				}
				if err := db.Exec("DROP TABLE IF EXISTS pairings CASCADE").Error; err != nil {
					return err
				}
				if err := db.Exec("DROP TABLE IF EXISTS user_championships CASCADE").Error; err != nil {
					return err
				}
				if err := db.Exec("DROP TABLE IF EXISTS championships CASCADE").Error; err != nil {
					return err
				}
				if err := db.Exec("DROP TABLE IF EXISTS users CASCADE").Error; err != nil {
					return err
				}
				return nil
			},
		},
	}
}
