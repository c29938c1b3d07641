package content

import (
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// SQLiteSource reads and writes the article corpus as a static sqlite
// file. It is a content ingestion source, not runtime state: the server
// loads it once at startup and never writes during operation.
type SQLiteSource struct {
	db *sql.DB
}

func OpenSQLiteSource(dataSourceName string) (*SQLiteSource, error) {
	db, err := sql.Open("sqlite3", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open content database: %w", err)
	}
	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping content database: %w", err)
	}

	src := &SQLiteSource{db: db}
	if err = src.initSchema(); err != nil {
		return nil, fmt.Errorf("failed to initialize content schema: %w", err)
	}
	return src, nil
}

func (s *SQLiteSource) Close() error {
	return s.db.Close()
}

func (s *SQLiteSource) initSchema() error {
	schema := `
    CREATE TABLE IF NOT EXISTS articles (
        id TEXT PRIMARY KEY,
        category TEXT NOT NULL,
        premium BOOLEAN NOT NULL DEFAULT FALSE,
        author TEXT NOT NULL,
        date TEXT NOT NULL,
        title_en TEXT NOT NULL,
        title_fr TEXT NOT NULL,
        title_ar TEXT NOT NULL,
        body_en TEXT NOT NULL,
        body_fr TEXT NOT NULL,
        body_ar TEXT NOT NULL,
        tags_json TEXT NOT NULL -- JSON array of lowercase keywords
    );
    `
	_, err := s.db.Exec(schema)
	return err
}

// Export writes the given articles into the source file, replacing any
// previous rows with the same id. Returns the number of rows written.
func (s *SQLiteSource) Export(articles []Article) (int, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("failed to begin export transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`INSERT OR REPLACE INTO articles
        (id, category, premium, author, date, title_en, title_fr, title_ar, body_en, body_fr, body_ar, tags_json)
        VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("failed to prepare article insert: %w", err)
	}
	defer stmt.Close()

	written := 0
	for _, a := range articles {
		if err := a.Validate(); err != nil {
			return written, fmt.Errorf("refusing to export invalid article: %w", err)
		}
		tagsJSON, err := json.Marshal(a.Tags)
		if err != nil {
			return written, fmt.Errorf("failed to marshal tags for article %s: %w", a.ID, err)
		}
		if _, err := stmt.Exec(
			a.ID, string(a.Category), a.Premium, a.Author, a.Date,
			a.Title.EN, a.Title.FR, a.Title.AR,
			a.Body.EN, a.Body.FR, a.Body.AR,
			string(tagsJSON),
		); err != nil {
			return written, fmt.Errorf("failed to insert article %s: %w", a.ID, err)
		}
		written++
	}

	if err := tx.Commit(); err != nil {
		return written, fmt.Errorf("failed to commit export: %w", err)
	}
	return written, nil
}

// LoadArticles reads the whole corpus in insertion (rowid) order.
func (s *SQLiteSource) LoadArticles() ([]Article, error) {
	rows, err := s.db.Query(`SELECT id, category, premium, author, date,
        title_en, title_fr, title_ar, body_en, body_fr, body_ar, tags_json
        FROM articles ORDER BY rowid ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query articles: %w", err)
	}
	defer rows.Close()

	var articles []Article
	for rows.Next() {
		var a Article
		var category, tagsJSON string
		if err := rows.Scan(
			&a.ID, &category, &a.Premium, &a.Author, &a.Date,
			&a.Title.EN, &a.Title.FR, &a.Title.AR,
			&a.Body.EN, &a.Body.FR, &a.Body.AR,
			&tagsJSON,
		); err != nil {
			return nil, fmt.Errorf("failed to scan article row: %w", err)
		}
		a.Category = Category(category)
		if err := json.Unmarshal([]byte(tagsJSON), &a.Tags); err != nil {
			return nil, fmt.Errorf("failed to unmarshal tags for article %s: %w", a.ID, err)
		}
		articles = append(articles, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate article rows: %w", err)
	}
	return articles, nil
}
