package ingestion

import (
	"context"
	"log/slog"
	"os"
	"runtime"
	"sync"

	"github.com/karrick/godirwalk"
	"github.com/panjf2000/ants/v2"
	"github.com/tessellate-ai/ragmux/ai"
	"github.com/tessellate-ai/ragmux/core"
	"github.com/tessellate-ai/ragmux/loader"
	"github.com/tessellate-ai/ragmux/storage"
)

const defaultBatchSize = 32

// Pipeline orchestrates ingestion of a document folder into a domain index.
// A single pipeline can serve any number of domains; the target index is
// passed per call.
type Pipeline struct {
	registry  *loader.Registry
	chunker   *Chunker
	embedder  ai.Embedder
	pool      *ants.Pool
	batchSize int
	logger    *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for concurrent embedding.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}

		if p.pool != nil {
			p.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		p.pool = pool
		return nil
	}
}

// WithBatchSize sets how many chunks are embedded per batch call.
func WithBatchSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}
		p.batchSize = size
		return nil
	}
}

// WithChunker sets a custom chunker.
// Default is the 800/100 sliding window.
func WithChunker(chunker *Chunker) Option {
	return func(p *Pipeline) error {
		if chunker == nil {
			return ErrInvalidChunkSize
		}
		p.chunker = chunker
		return nil
	}
}

// WithLoaderRegistry sets a custom loader registry.
func WithLoaderRegistry(registry *loader.Registry) Option {
	return func(p *Pipeline) error {
		if registry != nil {
			p.registry = registry
		}
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// NewPipeline creates a new ingestion pipeline.
func NewPipeline(embedder ai.Embedder, opts ...Option) (*Pipeline, error) {
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		registry:  loader.NewRegistry(),
		chunker:   NewDefaultChunker(),
		embedder:  embedder,
		pool:      pool,
		batchSize: defaultBatchSize,
		logger:    slog.Default().With("component", "ingestion"),
	}

	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}

	return p, nil
}

// Ingest walks sourceFolder recursively, loads every supported file, splits
// the text into chunks, embeds them and persists them into repo.
// Returns the number of chunks written.
//
// A missing folder or a folder with no loadable files is not an error: the
// result is simply 0. Re-ingestion is additive.
func (p *Pipeline) Ingest(ctx context.Context, domain string, sourceFolder string, repo storage.ChunkRepository) (int, error) {
	if repo == nil {
		return 0, ErrRepositoryRequired
	}

	paths, err := p.collectFiles(sourceFolder)
	if err != nil {
		return 0, err
	}

	chunks, err := p.loadAndSplit(ctx, domain, paths)
	if err != nil {
		return 0, err
	}
	if len(chunks) == 0 {
		p.logger.Info("nothing to ingest", "domain", domain, "folder", sourceFolder)
		return 0, nil
	}

	if err := p.embedChunks(ctx, chunks); err != nil {
		return 0, err
	}

	if _, err := repo.AddChunks(ctx, chunks...); err != nil {
		return 0, err
	}

	p.logger.Info("ingestion complete", "domain", domain, "chunks", len(chunks), "files", len(paths))
	return len(chunks), nil
}

// collectFiles returns the supported files under root, sorted.
// A missing root yields an empty list.
func (p *Pipeline) collectFiles(root string) ([]string, error) {
	if _, err := os.Stat(root); err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var paths []string
	err := godirwalk.Walk(root, &godirwalk.Options{
		Callback: func(path string, de *godirwalk.Dirent) error {
			if de.IsDir() {
				return nil
			}
			if p.registry.Supported(path) {
				paths = append(paths, path)
			} else {
				p.logger.Debug("skipping unsupported file", "path", path)
			}
			return nil
		},
		ErrorCallback: func(path string, err error) godirwalk.ErrorAction {
			p.logger.Warn("skipping unreadable entry", "path", path, "err", err)
			return godirwalk.SkipNode
		},
	})
	if err != nil {
		return nil, err
	}
	return paths, nil
}

// loadAndSplit loads each file and splits its documents into chunks tagged
// with the domain. Sequence numbers are contiguous per source file.
func (p *Pipeline) loadAndSplit(ctx context.Context, domain string, paths []string) ([]*core.Chunk, error) {
	var chunks []*core.Chunk

	for _, path := range paths {
		docs, ok, err := p.registry.Load(ctx, path)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}

		seq := 0
		for _, doc := range docs {
			split, err := p.chunker.Split(doc, seq)
			if err != nil {
				return nil, err
			}
			for _, chunk := range split {
				chunk.Domain = domain
			}
			seq += len(split)
			chunks = append(chunks, split...)
		}
	}
	return chunks, nil
}

// embedChunks embeds all chunks in concurrent batches on the worker pool and
// stores normalized vectors back onto the chunks.
func (p *Pipeline) embedChunks(ctx context.Context, chunks []*core.Chunk) error {
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)

	for start := 0; start < len(chunks); start += p.batchSize {
		end := start + p.batchSize
		if end > len(chunks) {
			end = len(chunks)
		}
		batch := chunks[start:end]

		wg.Add(1)
		submitErr := p.pool.Submit(func() {
			defer wg.Done()

			texts := make([]string, len(batch))
			for i, chunk := range batch {
				texts[i] = chunk.Text
			}

			vectors, err := p.embedder.EmbedTexts(ctx, texts)
			if err == nil && len(vectors) != len(batch) {
				err = ErrEmbeddingMismatch
			}

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				p.logger.Error("error embedding batch", "size", len(batch), "err", err)
				if firstErr == nil {
					firstErr = err
				}
				return
			}
			for i, vector := range vectors {
				batch[i].Vector = core.NormalizeVector(vector)
			}
		})
		if submitErr != nil {
			wg.Done()
			mu.Lock()
			if firstErr == nil {
				firstErr = submitErr
			}
			mu.Unlock()
			break
		}
	}

	wg.Wait()
	return firstErr
}

// Release releases the worker pool.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	if p.pool != nil {
		p.pool.Release()
	}
}
