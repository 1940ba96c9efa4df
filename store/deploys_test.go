package store

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *DeployStore {
	t.Helper()
	db, err := NewDB(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewDeployStore(db)
}

func TestRecordAndGetDeploy(t *testing.T) {
	s := newTestStore(t)

	d := Deployment{
		Id:        uuid.New().String(),
		Task:      "sum-of-sales",
		Round:     1,
		Nonce:     "ab12",
		RepoUrl:   "https://github.com/octocat/tds-sum-of-sales",
		PagesUrl:  "https://octocat.github.io/tds-sum-of-sales/",
		CommitSha: "deadbeef",
	}
	require.NoError(t, s.RecordDeploy(d, nil))

	got, err := s.GetDeploy("sum-of-sales")
	require.NoError(t, err)
	assert.Equal(t, d.Task, got.Task)
	assert.Equal(t, d.Round, got.Round)
	assert.Equal(t, d.RepoUrl, got.RepoUrl)
	assert.Equal(t, d.CommitSha, got.CommitSha)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestGetDeployNotFound(t *testing.T) {
	s := newTestStore(t)

	_, err := s.GetDeploy("nope")
	assert.ErrorIs(t, err, ErrDeployNotFound)
}

func TestSecondRoundUpsertsSameTask(t *testing.T) {
	s := newTestStore(t)

	first := Deployment{
		Id: uuid.New().String(), Task: "demo", Round: 1, Nonce: "n1",
		RepoUrl: "r", PagesUrl: "p", CommitSha: "sha1",
	}
	require.NoError(t, s.RecordDeploy(first, nil))

	second := first
	second.Id = uuid.New().String()
	second.Round = 2
	second.Nonce = "n2"
	second.CommitSha = "sha2"
	require.NoError(t, s.RecordDeploy(second, nil))

	got, err := s.GetDeploy("demo")
	require.NoError(t, err)
	assert.Equal(t, 2, got.Round)
	assert.Equal(t, "sha2", got.CommitSha)

	all, err := s.ListDeploys()
	require.NoError(t, err)
	assert.Len(t, all, 1, "round 2 must update, not duplicate")
}

func TestSnapshotRoundtrip(t *testing.T) {
	s := newTestStore(t)

	files := map[string]string{
		"index.html": "<!doctype html><html></html>",
		"script.js":  "console.log('hi');",
	}
	d := Deployment{
		Id: uuid.New().String(), Task: "demo", Round: 1, Nonce: "n",
		RepoUrl: "r", PagesUrl: "p", CommitSha: "sha",
	}
	require.NoError(t, s.RecordDeploy(d, files))

	got, err := s.GetSnapshot("demo")
	require.NoError(t, err)
	assert.Equal(t, files, got)
}

func TestSnapshotMissingTask(t *testing.T) {
	s := newTestStore(t)

	_, err := s.GetSnapshot("nope")
	assert.ErrorIs(t, err, ErrDeployNotFound)
}
