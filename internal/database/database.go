package database

import (
	"database/sql"
	"fmt"
	"os"
	"time"

	"ofertas-scraper/internal/models"

	_ "github.com/mattn/go-sqlite3"
)

// DB encapsula a conexão com o banco de dados
type DB struct {
	conn *sql.DB
}

// New abre o banco de dados, criando o arquivo se necessário
func New(dbPath string) (*DB, error) {
	conn, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, err
	}
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, err
	}
	return &DB{conn: conn}, nil
}

// Close fecha a conexão com o banco de dados
func (db *DB) Close() error {
	return db.conn.Close()
}

// EnsureTable cria a tabela de ofertas se ela ainda não existir.
// O nome precisa ter sido validado com config.ValidateTableName.
func (db *DB) EnsureTable(table string) error {
	createTableSQL := fmt.Sprintf(`
	CREATE TABLE IF NOT EXISTS %s (
		product TEXT,
		price TEXT,
		discount TEXT,
		included_in TEXT
	);
	`, quote(table))

	_, err := db.conn.Exec(createTableSQL)
	return err
}

// AppendOffers insere o lote inteiro numa transação; nunca atualiza nem remove
func (db *DB) AppendOffers(table string, batch models.Batch) error {
	if err := db.EnsureTable(table); err != nil {
		return fmt.Errorf("erro ao criar tabela %s: %w", table, err)
	}

	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(fmt.Sprintf(
		"INSERT INTO %s (product, price, discount, included_in) VALUES (?, ?, ?, ?)", quote(table)))
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, o := range batch {
		if _, err := stmt.Exec(o.Product, o.Price, o.Discount, o.IncludedIn.Format(models.TimestampLayout)); err != nil {
			return fmt.Errorf("erro ao inserir oferta %q: %w", o.Product, err)
		}
	}
	return tx.Commit()
}

// CountOffers retorna o número de linhas da tabela
func (db *DB) CountOffers(table string) (int, error) {
	var n int
	err := db.conn.QueryRow(fmt.Sprintf("SELECT COUNT(*) FROM %s", quote(table))).Scan(&n)
	return n, err
}

// LoadOffers retorna todas as ofertas na ordem de inserção
func (db *DB) LoadOffers(table string) ([]models.Offer, error) {
	return db.query(fmt.Sprintf(
		"SELECT product, price, discount, included_in FROM %s ORDER BY rowid", quote(table)))
}

// TailOffers retorna as últimas n ofertas, ainda na ordem de inserção
func (db *DB) TailOffers(table string, n int) ([]models.Offer, error) {
	return db.query(fmt.Sprintf(
		"SELECT product, price, discount, included_in FROM (SELECT rowid AS rid, * FROM %s ORDER BY rowid DESC LIMIT ?) ORDER BY rid",
		quote(table)), n)
}

func (db *DB) query(q string, args ...any) ([]models.Offer, error) {
	rows, err := db.conn.Query(q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var offers []models.Offer
	for rows.Next() {
		var o models.Offer
		var product, price, discount, includedIn sql.NullString
		if err := rows.Scan(&product, &price, &discount, &includedIn); err != nil {
			return nil, err
		}
		o.Product = product.String
		o.Price = price.String
		o.Discount = discount.String
		if includedIn.Valid {
			if t, err := time.Parse(models.TimestampLayout, includedIn.String); err == nil {
				o.IncludedIn = t
			}
		}
		offers = append(offers, o)
	}
	return offers, rows.Err()
}

// Persist abre o banco, acrescenta o lote e fecha a conexão
func Persist(dbPath, table string, batch models.Batch) error {
	db, err := New(dbPath)
	if err != nil {
		return fmt.Errorf("erro ao abrir banco de dados %s: %w", dbPath, err)
	}
	defer db.Close()

	if err := db.AppendOffers(table, batch); err != nil {
		return err
	}
	return db.Close()
}

func quote(table string) string {
	return `"` + table + `"`
}

// OpenExisting abre um banco que já precisa existir, usado só para leitura
func OpenExisting(dbPath string) (*DB, error) {
	if _, err := os.Stat(dbPath); err != nil {
		return nil, fmt.Errorf("banco de dados não encontrado em %s: %w", dbPath, err)
	}
	return New(dbPath)
}
