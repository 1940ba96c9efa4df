package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/klauspost/compress/zstd"
)

var ErrDeployNotFound = errors.New("deployment not found")

// Deployment is one recorded publish of a task. The task is the key:
// re-submitting (round 2) overwrites the row, never duplicates it.
type Deployment struct {
	Id        string    `json:"id"`
	Task      string    `json:"task"`
	Round     int       `json:"round"`
	Nonce     string    `json:"nonce"`
	RepoUrl   string    `json:"repo_url"`
	PagesUrl  string    `json:"pages_url"`
	CommitSha string    `json:"commit_sha"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type DeployStore struct {
	db *DB
}

func NewDeployStore(db *DB) *DeployStore {
	return &DeployStore{db: db}
}

// RecordDeploy upserts the deployment row for d.Task. snapshot holds
// the generated text files and is stored zstd-compressed; it may be nil.
func (s *DeployStore) RecordDeploy(d Deployment, snapshot map[string]string) error {
	blob, err := encodeSnapshot(snapshot)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	query := `
		INSERT INTO deployments (id, task, round, nonce, repo_url, pages_url, commit_sha, snapshot, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(task) DO UPDATE SET
			round = excluded.round,
			nonce = excluded.nonce,
			repo_url = excluded.repo_url,
			pages_url = excluded.pages_url,
			commit_sha = excluded.commit_sha,
			snapshot = excluded.snapshot,
			updated_at = excluded.updated_at
	`
	_, err = s.db.Exec(query,
		d.Id, d.Task, d.Round, d.Nonce, d.RepoUrl, d.PagesUrl, d.CommitSha, blob, now, now)
	if err != nil {
		return fmt.Errorf("failed to record deployment: %w", err)
	}
	return nil
}

func (s *DeployStore) GetDeploy(task string) (*Deployment, error) {
	query := `
		SELECT id, task, round, nonce, repo_url, pages_url, commit_sha, created_at, updated_at
		FROM deployments WHERE task = ?
	`
	var d Deployment
	err := s.db.QueryRow(query, task).Scan(
		&d.Id, &d.Task, &d.Round, &d.Nonce,
		&d.RepoUrl, &d.PagesUrl, &d.CommitSha,
		&d.CreatedAt, &d.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrDeployNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get deployment: %w", err)
	}
	return &d, nil
}

// GetSnapshot returns the generated files of the task's last deployment.
func (s *DeployStore) GetSnapshot(task string) (map[string]string, error) {
	var blob []byte
	err := s.db.QueryRow(`SELECT snapshot FROM deployments WHERE task = ?`, task).Scan(&blob)
	if err == sql.ErrNoRows {
		return nil, ErrDeployNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get snapshot: %w", err)
	}
	return decodeSnapshot(blob)
}

func (s *DeployStore) ListDeploys() ([]Deployment, error) {
	query := `
		SELECT id, task, round, nonce, repo_url, pages_url, commit_sha, created_at, updated_at
		FROM deployments ORDER BY updated_at DESC
	`
	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list deployments: %w", err)
	}
	defer rows.Close()

	var out []Deployment
	for rows.Next() {
		var d Deployment
		err := rows.Scan(
			&d.Id, &d.Task, &d.Round, &d.Nonce,
			&d.RepoUrl, &d.PagesUrl, &d.CommitSha,
			&d.CreatedAt, &d.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan deployment: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func encodeSnapshot(files map[string]string) ([]byte, error) {
	if files == nil {
		return nil, nil
	}
	data, err := json.Marshal(files)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal snapshot: %w", err)
	}
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, err
	}
	defer enc.Close()
	return enc.EncodeAll(data, nil), nil
}

func decodeSnapshot(blob []byte) (map[string]string, error) {
	if len(blob) == 0 {
		return nil, nil
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	defer dec.Close()
	data, err := dec.DecodeAll(blob, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress snapshot: %w", err)
	}
	var files map[string]string
	if err := json.Unmarshal(data, &files); err != nil {
		return nil, fmt.Errorf("failed to unmarshal snapshot: %w", err)
	}
	return files, nil
}
