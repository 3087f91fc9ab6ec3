package discovery

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"unicode/utf8"

	log "github.com/sirupsen/logrus"

	"pagescroll/internal/domain"
	"pagescroll/internal/eventbus"
)

// Document files larger than this are truncated
const maxDocumentSize = 256 * 1024

// Extensions recognised as page documents
var documentExtensions = map[string]bool{
	".txt":      true,
	".md":       true,
	".markdown": true,
	".log":      true,
	".text":     true,
}

// DiscoveryService finds text documents in the filesystem
type DiscoveryService interface {
	StartScan(ctx context.Context, roots []string) error
	StopScan()
}

// discoveryService is the concrete implementation
type discoveryService struct {
	bus        eventbus.EventBus
	mu         sync.Mutex
	isScanning bool
	cancelFunc context.CancelFunc
	wg         sync.WaitGroup
}

// NewDiscoveryService creates a new discovery service
func NewDiscoveryService(bus eventbus.EventBus) DiscoveryService {
	ds := &discoveryService{
		bus: bus,
	}

	// Subscribe to scan requests
	bus.Subscribe(eventbus.EventScanRequested, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ScanRequestedEvent); ok {
			if err := ds.StartScan(context.Background(), event.Paths); err != nil {
				log.WithError(err).Warn("scan request ignored")
			}
		}
	})

	return ds
}

// StartScan starts scanning roots for documents. Roots may be files or directories.
// Documents are published in lexical path order per root.
func (ds *discoveryService) StartScan(ctx context.Context, roots []string) error {
	ds.mu.Lock()
	if ds.isScanning {
		ds.mu.Unlock()
		return fmt.Errorf("scan already in progress")
	}
	ds.isScanning = true

	scanCtx, cancel := context.WithCancel(ctx)
	ds.cancelFunc = cancel
	ds.mu.Unlock()

	ds.bus.Publish(eventbus.ScanStartedEvent{Paths: roots})

	docsFound := 0

	ds.wg.Add(1)
	go func() {
		defer ds.wg.Done()
		defer func() {
			ds.mu.Lock()
			ds.isScanning = false
			ds.cancelFunc = nil
			ds.mu.Unlock()
			cancel()

			ds.bus.Publish(eventbus.ScanCompletedEvent{DocumentsFound: docsFound})
		}()

		for _, root := range roots {
			select {
			case <-scanCtx.Done():
				return
			default:
				docsFound += ds.scanPath(scanCtx, root)
			}
		}
	}()

	return nil
}

// StopScan stops any ongoing scan
func (ds *discoveryService) StopScan() {
	ds.mu.Lock()
	if ds.cancelFunc != nil {
		ds.cancelFunc()
	}
	ds.mu.Unlock()

	ds.wg.Wait()
}

// scanPath publishes every document under root and returns how many it found
func (ds *discoveryService) scanPath(ctx context.Context, root string) int {
	paths, err := FindDocuments(ctx, root)
	if err != nil && err != context.Canceled {
		log.WithError(err).WithField("root", root).Error("Error scanning path")
		ds.bus.Publish(eventbus.ErrorEvent{
			Message: fmt.Sprintf("Failed to scan %s", root),
			Err:     err,
		})
	}

	found := 0
	for _, path := range paths {
		if ctx.Err() != nil {
			break
		}
		doc, err := ReadDocument(path)
		if err != nil {
			log.WithError(err).WithField("path", path).Warn("Skipping unreadable document")
			continue
		}
		ds.bus.Publish(eventbus.DocumentDiscoveredEvent{Document: doc})
		found++
	}
	return found
}

// FindDocuments lists document files under root, sorted by path.
// A root that is itself a file is returned as is, whatever its extension.
func FindDocuments(ctx context.Context, root string) ([]string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []string{root}, nil
	}

	maxDepth := 3
	var paths []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err != nil {
			log.WithError(err).WithField("path", path).Debug("Error walking path")
			return nil // Continue walking
		}

		if d.IsDir() {
			if path == root {
				return nil
			}
			relPath, _ := filepath.Rel(root, path)
			if strings.Count(relPath, string(filepath.Separator)) >= maxDepth {
				return filepath.SkipDir
			}
			// Skip hidden and dependency directories
			name := d.Name()
			if strings.HasPrefix(name, ".") || name == "node_modules" || name == "vendor" {
				return filepath.SkipDir
			}
			return nil
		}

		if documentExtensions[strings.ToLower(filepath.Ext(path))] {
			paths = append(paths, path)
		}
		return nil
	})

	sort.Strings(paths)
	return paths, err
}

// ReadDocument loads a file as a page document titled by its file name
func ReadDocument(path string) (domain.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return domain.Document{}, err
	}
	defer f.Close()

	buf := make([]byte, maxDocumentSize)
	n, err := io.ReadFull(f, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return domain.Document{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	body := buf[:n]
	if n == maxDocumentSize {
		// Drop a rune cut in half by the size limit
		for i := 1; i < utf8.UTFMax && len(body) > 0 && !utf8.Valid(body); i++ {
			body = body[:len(body)-1]
		}
	}
	if !utf8.Valid(body) {
		return domain.Document{}, fmt.Errorf("%s is not a text file", path)
	}

	return domain.NewDocument(filepath.Base(path), strings.ReplaceAll(string(body), "\r\n", "\n"), path), nil
}
