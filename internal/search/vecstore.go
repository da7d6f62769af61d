package search

import (
	"container/heap"
	"context"
	"database/sql"
	"encoding/binary"
	"fmt"
	"math"
	"sync"
)

// VecStore provides brute-force vector search over item embeddings stored
// as SQLite BLOBs in the item_vectors table. Vectors are cached in memory,
// which keeps search exact and sub-millisecond at personal-planner scale.
type VecStore struct {
	db *sql.DB

	mu      sync.RWMutex
	vectors map[string][]float32 // item id -> normalized embedding
}

// ScoredID pairs an item ID with a cosine similarity score.
type ScoredID struct {
	ItemID string
	Score  float64
}

// NewVecStore creates a vector store over the given database and loads
// existing embeddings into memory. The item_vectors table is created by
// the db package migrations.
func NewVecStore(db *sql.DB) (*VecStore, error) {
	vs := &VecStore{
		db:      db,
		vectors: make(map[string][]float32),
	}
	if err := vs.loadAll(); err != nil {
		return nil, fmt.Errorf("loading item vectors: %w", err)
	}
	return vs, nil
}

func (vs *VecStore) loadAll() error {
	rows, err := vs.db.Query(`SELECT item_id, embedding, dimensions FROM item_vectors`)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var id string
		var blob []byte
		var dims int
		if err := rows.Scan(&id, &blob, &dims); err != nil {
			return err
		}
		vs.vectors[id] = blobToVector(blob, dims)
	}
	return rows.Err()
}

// Upsert stores the embedding for an item. The vector is normalized on
// insert so that dot product equals cosine similarity at query time.
func (vs *VecStore) Upsert(ctx context.Context, itemID string, vector []float32) error {
	normalized := normalize(vector)
	blob := vectorToBlob(normalized)

	vs.mu.Lock()
	defer vs.mu.Unlock()

	_, err := vs.db.ExecContext(ctx, `
		INSERT INTO item_vectors (item_id, embedding, dimensions)
		VALUES (?, ?, ?)
		ON CONFLICT(item_id) DO UPDATE SET
			embedding = excluded.embedding, dimensions = excluded.dimensions
	`, itemID, blob, len(normalized))
	if err != nil {
		return fmt.Errorf("upserting item vector: %w", err)
	}

	vs.vectors[itemID] = normalized
	return nil
}

// Search returns the top-K item IDs by cosine similarity to the query
// vector, in descending score order.
func (vs *VecStore) Search(queryVec []float32, limit int) []ScoredID {
	if limit <= 0 {
		limit = 10
	}
	query := normalize(queryVec)

	vs.mu.RLock()
	h := &minHeap{}
	heap.Init(h)
	for id, vec := range vs.vectors {
		if len(vec) != len(query) {
			continue
		}
		score := dot(query, vec)
		if h.Len() < limit {
			heap.Push(h, ScoredID{ItemID: id, Score: score})
		} else if score > (*h)[0].Score {
			(*h)[0] = ScoredID{ItemID: id, Score: score}
			heap.Fix(h, 0)
		}
	}
	vs.mu.RUnlock()

	results := make([]ScoredID, h.Len())
	for i := len(results) - 1; i >= 0; i-- {
		results[i] = heap.Pop(h).(ScoredID)
	}
	return results
}

// Delete removes the embedding for an item, if present.
func (vs *VecStore) Delete(ctx context.Context, itemID string) error {
	vs.mu.Lock()
	defer vs.mu.Unlock()

	_, err := vs.db.ExecContext(ctx, `DELETE FROM item_vectors WHERE item_id = ?`, itemID)
	if err != nil {
		return fmt.Errorf("deleting item vector: %w", err)
	}
	delete(vs.vectors, itemID)
	return nil
}

// Count returns the number of stored embeddings.
func (vs *VecStore) Count() int {
	vs.mu.RLock()
	defer vs.mu.RUnlock()
	return len(vs.vectors)
}

// minHeap keeps the lowest score at the root for top-K selection.
type minHeap []ScoredID

func (h minHeap) Len() int           { return len(h) }
func (h minHeap) Less(i, j int) bool { return h[i].Score < h[j].Score }
func (h minHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *minHeap) Push(x any)        { *h = append(*h, x.(ScoredID)) }
func (h *minHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

func normalize(v []float32) []float32 {
	var norm float64
	for _, x := range v {
		norm += float64(x) * float64(x)
	}
	norm = math.Sqrt(norm)

	out := make([]float32, len(v))
	if norm == 0 {
		return out
	}
	for i, x := range v {
		out[i] = float32(float64(x) / norm)
	}
	return out
}

func dot(a, b []float32) float64 {
	var sum float64
	for i := range a {
		sum += float64(a[i]) * float64(b[i])
	}
	return sum
}

func vectorToBlob(v []float32) []byte {
	buf := make([]byte, len(v)*4)
	for i, f := range v {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(f))
	}
	return buf
}

func blobToVector(b []byte, dims int) []float32 {
	v := make([]float32, dims)
	for i := 0; i < dims && i*4+4 <= len(b); i++ {
		v[i] = math.Float32frombits(binary.LittleEndian.Uint32(b[i*4:]))
	}
	return v
}
