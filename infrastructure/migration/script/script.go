package main

import (
	"database/sql"
	"encoding/csv"
	"errors"
	"flag"
	"io"
	"log"
	"os"
	"strings"
	"time"

	_ "github.com/lib/pq"
	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/vfg2006/mail-insights-api/internal/config"
	"github.com/vfg2006/mail-insights-api/pkg/secret"
)

const (
	idLength   = 12
	characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

// Account é uma linha do CSV de carga inicial: name,base_url,api_key
type Account struct {
	Name    string
	BaseURL string
	APIKey  string
}

// schema cria as tabelas do espelho local. Tabelas de domínio não têm FK para accounts:
// registros órfãos são tolerados e lidos via JOIN.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS accounts (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		base_url TEXT NOT NULL UNIQUE,
		api_key TEXT NOT NULL,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		contact_count INTEGER NOT NULL DEFAULT 0,
		contact_limit INTEGER,
		last_contact_sync TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS lists (
		account_id TEXT NOT NULL,
		id TEXT NOT NULL,
		name TEXT NOT NULL,
		active_contacts INTEGER,
		total_contacts INTEGER,
		raw_payload JSONB,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		PRIMARY KEY (account_id, id)
	)`,
	`CREATE TABLE IF NOT EXISTS campaigns (
		account_id TEXT NOT NULL,
		id TEXT NOT NULL,
		name TEXT NOT NULL,
		status TEXT NOT NULL,
		type TEXT,
		is_automation BOOLEAN NOT NULL DEFAULT FALSE,
		send_date TIMESTAMPTZ,
		sent INTEGER NOT NULL DEFAULT 0,
		opens INTEGER NOT NULL DEFAULT 0,
		unique_opens INTEGER NOT NULL DEFAULT 0,
		clicks INTEGER NOT NULL DEFAULT 0,
		unique_clicks INTEGER NOT NULL DEFAULT 0,
		bounces INTEGER NOT NULL DEFAULT 0,
		unsubscribes INTEGER NOT NULL DEFAULT 0,
		open_rate DOUBLE PRECISION NOT NULL DEFAULT 0,
		click_rate DOUBLE PRECISION NOT NULL DEFAULT 0,
		click_to_open_rate DOUBLE PRECISION NOT NULL DEFAULT 0,
		raw_payload JSONB,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		PRIMARY KEY (account_id, id)
	)`,
	`CREATE INDEX IF NOT EXISTS campaigns_send_date_idx ON campaigns (send_date)`,
	`CREATE TABLE IF NOT EXISTS campaign_lists (
		account_id TEXT NOT NULL,
		campaign_id TEXT NOT NULL,
		list_id TEXT NOT NULL,
		PRIMARY KEY (account_id, campaign_id, list_id)
	)`,
	`CREATE TABLE IF NOT EXISTS automations (
		account_id TEXT NOT NULL,
		id TEXT NOT NULL,
		name TEXT NOT NULL,
		status TEXT NOT NULL,
		entered INTEGER NOT NULL DEFAULT 0,
		completed INTEGER NOT NULL DEFAULT 0,
		active INTEGER NOT NULL DEFAULT 0,
		raw_payload JSONB,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		PRIMARY KEY (account_id, id)
	)`,
	`CREATE TABLE IF NOT EXISTS automation_campaigns (
		account_id TEXT NOT NULL,
		automation_id TEXT NOT NULL,
		campaign_id TEXT NOT NULL,
		source TEXT NOT NULL,
		PRIMARY KEY (account_id, automation_id, campaign_id)
	)`,
	`CREATE TABLE IF NOT EXISTS campaign_messages (
		account_id TEXT NOT NULL,
		id TEXT NOT NULL,
		campaign_id TEXT NOT NULL,
		contact_id TEXT,
		sent_at TIMESTAMPTZ,
		was_opened BOOLEAN NOT NULL DEFAULT FALSE,
		was_clicked BOOLEAN NOT NULL DEFAULT FALSE,
		was_bounced BOOLEAN NOT NULL DEFAULT FALSE,
		raw_payload JSONB,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		PRIMARY KEY (account_id, id)
	)`,
	`CREATE TABLE IF NOT EXISTS sync_jobs (
		id TEXT PRIMARY KEY,
		account_id TEXT NOT NULL,
		status TEXT NOT NULL,
		is_automatic BOOLEAN NOT NULL DEFAULT FALSE,
		lists_synced INTEGER NOT NULL DEFAULT 0,
		campaigns_synced INTEGER NOT NULL DEFAULT 0,
		automations_synced INTEGER NOT NULL DEFAULT 0,
		messages_synced INTEGER NOT NULL DEFAULT 0,
		started_at TIMESTAMPTZ NOT NULL,
		finished_at TIMESTAMPTZ,
		error TEXT
	)`,
	`CREATE INDEX IF NOT EXISTS sync_jobs_started_at_idx ON sync_jobs (started_at DESC)`,
}

func setupLogger() {
	// Configura o logger para incluir data, hora e arquivo
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.Println("Iniciando script de migração...")
}

func generateID() string {
	id, _ := gonanoid.Generate(characters, idLength)
	return id
}

func createSchema(db *sql.DB) {
	log.Printf("Criando %d objetos do schema...", len(schema))

	for i, ddl := range schema {
		if _, err := db.Exec(ddl); err != nil {
			log.Fatalf("ERRO ao executar DDL %d: %v", i+1, err)
		}
	}

	log.Println("Schema criado com sucesso")
}

func readAccounts(path string) ([]Account, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = 3
	reader.TrimLeadingSpace = true

	var accounts []Account
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		if strings.EqualFold(record[0], "name") {
			continue
		}

		accounts = append(accounts, Account{
			Name:    strings.TrimSpace(record[0]),
			BaseURL: strings.TrimRight(strings.TrimSpace(record[1]), "/"),
			APIKey:  strings.TrimSpace(record[2]),
		})
	}

	return accounts, nil
}

func insertAccounts(tx *sql.Tx, sealer secret.Sealer, accountList []Account) {
	log.Printf("Iniciando inserção de %d contas...", len(accountList))
	startTime := time.Now()

	stmt, err := tx.Prepare(`INSERT INTO accounts (id, name, base_url, api_key) VALUES ($1, $2, $3, $4) ON CONFLICT (base_url) DO NOTHING`)
	if err != nil {
		log.Fatalf("ERRO ao preparar statement para accounts: %v", err)
	}
	defer stmt.Close()

	successCount := 0
	skippedCount := 0
	errorCount := 0

	for i, a := range accountList {
		sealed, err := sealer.Seal(a.APIKey)
		if err != nil {
			log.Printf("ERRO ao cifrar API key da conta %s: %v", a.Name, err)
			errorCount++
			continue
		}

		result, err := stmt.Exec(generateID(), a.Name, a.BaseURL, sealed)
		if err != nil {
			log.Printf("ERRO ao inserir conta %s (%s): %v", a.Name, a.BaseURL, err)
			errorCount++
			continue
		}

		if affected, _ := result.RowsAffected(); affected == 0 {
			log.Printf("Conta %s já cadastrada, ignorando", a.BaseURL)
			skippedCount++
			continue
		}

		successCount++
		if (i+1)%10 == 0 || i == len(accountList)-1 {
			log.Printf("Progresso: %d/%d contas processadas", i+1, len(accountList))
		}
	}

	elapsed := time.Since(startTime)
	log.Printf("Inserção de contas concluída em %v. Sucesso: %d, Ignoradas: %d, Erros: %d", elapsed, successCount, skippedCount, errorCount)
}

func main() {
	setupLogger()

	accountsFile := flag.String("accounts", "", "CSV com name,base_url,api_key para carga inicial")
	flag.Parse()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("ERRO ao carregar configuração: %v", err)
	}

	log.Println("Conectando ao banco de dados...")

	db, err := sql.Open("postgres", cfg.Database.DSN)
	if err != nil {
		log.Fatalf("ERRO ao conectar ao banco de dados: %v", err)
	}
	defer db.Close()

	// Verificar conexão
	err = db.Ping()
	if err != nil {
		log.Fatalf("ERRO ao verificar conexão com o banco: %v", err)
	}
	log.Println("Conexão com o banco de dados estabelecida com sucesso")

	createSchema(db)

	if *accountsFile == "" {
		log.Println("Nenhum arquivo de contas informado, carga inicial ignorada")
		return
	}

	accountList, err := readAccounts(*accountsFile)
	if err != nil {
		log.Fatalf("ERRO ao ler arquivo de contas: %v", err)
	}
	log.Printf("Total de %d contas definidas para inserção", len(accountList))

	sealer, err := secret.NewSealer(cfg.SecretKey)
	if err != nil {
		log.Fatalf("ERRO ao preparar cifragem: %v", err)
	}

	startTime := time.Now()
	log.Println("Iniciando transação...")

	tx, err := db.Begin()
	if err != nil {
		log.Fatalf("ERRO ao iniciar transação: %v", err)
	}

	insertAccounts(tx, sealer, accountList)

	if err := tx.Commit(); err != nil {
		log.Printf("ERRO ao confirmar transação: %v", err)
		if err := tx.Rollback(); err != nil {
			log.Fatalf("ERRO ao reverter transação: %v", err)
		}
		log.Println("Transação revertida")
		os.Exit(1)
	}

	elapsed := time.Since(startTime)
	log.Printf("Carga inicial concluída em %v!", elapsed)
}
