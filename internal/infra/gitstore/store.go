// Package gitstore provides a Git plumbing-based implementation of TaskStore.
package gitstore

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/filemode"
	"github.com/go-git/go-git/v5/plumbing/object"
	"gopkg.in/yaml.v3"

	"github.com/runoshun/taskflow/internal/domain"
	"github.com/runoshun/taskflow/internal/infra/crypto"
)

// snapshotFile is the tree entry holding the task list.
const snapshotFile = "tasks.yaml"

// Store implements domain.TaskStore using Git plumbing (refs, blobs and commits).
// Every Save records a commit, so earlier snapshots stay reachable.
//
// Data structure:
//
//	refs/<namespace>/
//	  initialized → blob (marker)
//	  tasks       → commit → tree { tasks.yaml → blob (task list YAML) }
type Store struct {
	repo      *git.Repository
	sealer    *crypto.Sealer
	now       func() time.Time
	repoPath  string // path to the repository, empty when built from a handle
	namespace string // e.g., "taskflow"
	mu        sync.RWMutex
}

// snapshot is the YAML document stored in the blob.
type snapshot struct {
	Tasks []domain.Task `yaml:"tasks"`
}

// New creates a Store for the bare repository at repoPath.
// The repository is created by Initialize if it does not exist yet.
// A nil sealer stores snapshots in plain text.
func New(repoPath, namespace string, sealer *crypto.Sealer) (*Store, error) {
	s := &Store{
		repoPath:  repoPath,
		namespace: namespace,
		sealer:    sealer,
		now:       time.Now,
	}
	repo, err := git.PlainOpen(repoPath)
	switch {
	case err == nil:
		s.repo = repo
	case errors.Is(err, git.ErrRepositoryNotExists):
		// Created on Initialize
	default:
		return nil, fmt.Errorf("open git repository: %w", err)
	}
	return s, nil
}

// NewWithRepo creates a new Store with an existing repository instance.
func NewWithRepo(repo *git.Repository, namespace string, sealer *crypto.Sealer) *Store {
	return &Store{
		repo:      repo,
		namespace: namespace,
		sealer:    sealer,
		now:       time.Now,
	}
}

// tasksRef returns the ref name of the snapshot commit.
func (s *Store) tasksRef() plumbing.ReferenceName {
	return plumbing.ReferenceName(domain.TaskRefName(s.namespace))
}

// initializedRef returns the ref name for the initialized marker.
func (s *Store) initializedRef() plumbing.ReferenceName {
	return plumbing.ReferenceName(domain.InitializedRefName(s.namespace))
}

// Load reads the latest snapshot.
func (s *Store) Load() ([]domain.Task, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.isInitializedLocked() {
		return nil, domain.ErrNotInitialized
	}

	ref, err := s.repo.Reference(s.tasksRef(), true)
	if errors.Is(err, plumbing.ErrReferenceNotFound) {
		return nil, nil // Initialized, nothing saved yet
	}
	if err != nil {
		return nil, fmt.Errorf("get tasks ref: %w", err)
	}

	return s.readSnapshot(ref.Hash())
}

// Save records the tasks as a new snapshot commit.
func (s *Store) Save(tasks []domain.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.repo == nil {
		return domain.ErrNotInitialized
	}
	if tasks == nil {
		tasks = []domain.Task{}
	}

	content, err := yaml.Marshal(&snapshot{Tasks: tasks})
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}

	blobHash, err := s.writeBlob(content)
	if err != nil {
		return err
	}

	treeHash, err := s.writeTree(blobHash)
	if err != nil {
		return err
	}

	var parents []plumbing.Hash
	ref, err := s.repo.Reference(s.tasksRef(), true)
	switch {
	case err == nil:
		parents = []plumbing.Hash{ref.Hash()}
	case !errors.Is(err, plumbing.ErrReferenceNotFound):
		return fmt.Errorf("get tasks ref: %w", err)
	}

	commitHash, err := s.writeCommit(treeHash, parents, fmt.Sprintf("save %d tasks", len(tasks)))
	if err != nil {
		return err
	}

	if err := s.repo.Storer.SetReference(plumbing.NewHashReference(s.tasksRef(), commitHash)); err != nil {
		return fmt.Errorf("set tasks ref: %w", err)
	}
	return nil
}

// History returns earlier snapshots, newest first.
func (s *Store) History(limit int) ([]domain.SnapshotInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.isInitializedLocked() {
		return nil, domain.ErrNotInitialized
	}

	ref, err := s.repo.Reference(s.tasksRef(), true)
	if errors.Is(err, plumbing.ErrReferenceNotFound) {
		return []domain.SnapshotInfo{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get tasks ref: %w", err)
	}

	var infos []domain.SnapshotInfo
	hash := ref.Hash()
	for !hash.IsZero() {
		if limit > 0 && len(infos) >= limit {
			break
		}
		commit, err := s.repo.CommitObject(hash)
		if err != nil {
			return nil, fmt.Errorf("get commit %s: %w", hash, err)
		}
		tasks, err := s.readSnapshot(hash)
		if err != nil {
			return nil, err
		}
		infos = append(infos, domain.SnapshotInfo{
			Hash:    hash.String(),
			When:    commit.Committer.When,
			Message: commit.Message,
			Tasks:   len(tasks),
		})
		hash = plumbing.ZeroHash
		if len(commit.ParentHashes) > 0 {
			hash = commit.ParentHashes[0]
		}
	}
	return infos, nil
}

// Initialize creates the repository and the initialized marker.
// Returns true if the store was created by this call.
func (s *Store) Initialize() (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.repo == nil {
		if s.repoPath == "" {
			return false, fmt.Errorf("initialize git store: no repository path")
		}
		repo, err := git.PlainInit(s.repoPath, true)
		if err != nil {
			return false, fmt.Errorf("init git repository: %w", err)
		}
		s.repo = repo
	}

	_, err := s.repo.Reference(s.initializedRef(), true)
	if err == nil {
		return false, nil // Already initialized
	}
	if !errors.Is(err, plumbing.ErrReferenceNotFound) {
		return false, fmt.Errorf("check initialized ref: %w", err)
	}

	hash, err := s.writeRawBlob([]byte("initialized"))
	if err != nil {
		return false, err
	}
	ref := plumbing.NewHashReference(s.initializedRef(), hash)
	if err := s.repo.Storer.SetReference(ref); err != nil {
		return false, fmt.Errorf("set initialized ref: %w", err)
	}
	return true, nil
}

// IsInitialized checks if the store has been initialized.
func (s *Store) IsInitialized() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isInitializedLocked()
}

func (s *Store) isInitializedLocked() bool {
	if s.repo == nil {
		return false
	}
	_, err := s.repo.Reference(s.initializedRef(), true)
	return err == nil
}

// readSnapshot decodes the task list stored in a snapshot commit.
func (s *Store) readSnapshot(commitHash plumbing.Hash) ([]domain.Task, error) {
	commit, err := s.repo.CommitObject(commitHash)
	if err != nil {
		return nil, fmt.Errorf("get commit: %w", err)
	}
	tree, err := commit.Tree()
	if err != nil {
		return nil, fmt.Errorf("get tree: %w", err)
	}
	entry, err := tree.FindEntry(snapshotFile)
	if err != nil {
		return nil, fmt.Errorf("%w: %s missing: %w", domain.ErrSnapshotCorrupted, snapshotFile, err)
	}

	content, err := s.readBlob(entry.Hash)
	if err != nil {
		return nil, err
	}

	var snap snapshot
	if err := yaml.Unmarshal(content, &snap); err != nil {
		return nil, fmt.Errorf("parse snapshot: %w: %w", domain.ErrSnapshotCorrupted, err)
	}
	return snap.Tasks, nil
}

// writeBlob writes data to a blob and returns the hash.
// If a sealer is configured, the data is encrypted before writing.
func (s *Store) writeBlob(data []byte) (plumbing.Hash, error) {
	if s.sealer != nil {
		sealed, err := s.sealer.Seal(data)
		if err != nil {
			return plumbing.ZeroHash, fmt.Errorf("encrypt data: %w", err)
		}
		data = sealed
	}
	return s.writeRawBlob(data)
}

func (s *Store) writeRawBlob(data []byte) (plumbing.Hash, error) {
	obj := s.repo.Storer.NewEncodedObject()
	obj.SetType(plumbing.BlobObject)
	obj.SetSize(int64(len(data)))

	writer, err := obj.Writer()
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("create blob writer: %w", err)
	}

	if _, writeErr := writer.Write(data); writeErr != nil {
		_ = writer.Close()
		return plumbing.ZeroHash, fmt.Errorf("write blob: %w", writeErr)
	}
	_ = writer.Close()

	hash, err := s.repo.Storer.SetEncodedObject(obj)
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("store blob: %w", err)
	}
	return hash, nil
}

// readBlob reads and, when sealed, decrypts data from a blob.
// Plain blobs are returned as-is even when a sealer is configured.
func (s *Store) readBlob(hash plumbing.Hash) ([]byte, error) {
	blob, err := s.repo.BlobObject(hash)
	if err != nil {
		return nil, fmt.Errorf("get blob: %w", err)
	}

	reader, err := blob.Reader()
	if err != nil {
		return nil, fmt.Errorf("read blob: %w", err)
	}
	defer func() { _ = reader.Close() }()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("read blob data: %w", err)
	}

	if !crypto.IsSealed(data) {
		return data, nil
	}
	if s.sealer == nil {
		return nil, domain.ErrSnapshotEncrypted
	}
	plain, err := s.sealer.Open(data)
	if err != nil {
		return nil, fmt.Errorf("decrypt data: %w", err)
	}
	return plain, nil
}

func (s *Store) writeTree(blobHash plumbing.Hash) (plumbing.Hash, error) {
	tree := &object.Tree{
		Entries: []object.TreeEntry{
			{Name: snapshotFile, Mode: filemode.Regular, Hash: blobHash},
		},
	}

	obj := s.repo.Storer.NewEncodedObject()
	if err := tree.Encode(obj); err != nil {
		return plumbing.ZeroHash, fmt.Errorf("encode tree: %w", err)
	}

	hash, err := s.repo.Storer.SetEncodedObject(obj)
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("store tree: %w", err)
	}
	return hash, nil
}

func (s *Store) writeCommit(treeHash plumbing.Hash, parents []plumbing.Hash, message string) (plumbing.Hash, error) {
	sig := object.Signature{
		Name:  "taskflow",
		Email: "taskflow@localhost",
		When:  s.now(),
	}
	commit := &object.Commit{
		Author:       sig,
		Committer:    sig,
		Message:      message,
		TreeHash:     treeHash,
		ParentHashes: parents,
	}

	obj := s.repo.Storer.NewEncodedObject()
	if err := commit.Encode(obj); err != nil {
		return plumbing.ZeroHash, fmt.Errorf("encode commit: %w", err)
	}

	hash, err := s.repo.Storer.SetEncodedObject(obj)
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("store commit: %w", err)
	}
	return hash, nil
}

// Ensure Store implements the store ports.
var (
	_ domain.TaskStore        = (*Store)(nil)
	_ domain.StoreInitializer = (*Store)(nil)
	_ domain.SnapshotHistory  = (*Store)(nil)
)
