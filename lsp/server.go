// Package lsp serves resolved bean properties over the Language Server
// Protocol. Hovering a class name in a Java source shows the properties its
// class file resolves to.
package lsp

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strings"
	"sync"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	"github.com/dhamidi/beanscan/java"
	"github.com/dhamidi/beanscan/java/scanner"
	"github.com/dhamidi/beanscan/property"
)

const lsName = "beanscan"

var log = commonlog.GetLogger("beanscan.lsp")

type Server struct {
	version   string
	classpath []string
	options   property.Options
	handler   protocol.Handler
	server    *server.Server

	mu       sync.RWMutex
	rootDir  string
	resolver *property.Resolver
	docs     map[string]string
}

// NewServer creates a server that indexes classpath once the client is
// initialized. Relative entries are taken from the workspace root; an empty
// classpath indexes the root itself.
func NewServer(version string, classpath []string, opts property.Options) *Server {
	s := &Server{
		version:   version,
		classpath: classpath,
		options:   opts,
		rootDir:   ".",
		docs:      map[string]string{},
	}

	s.handler = protocol.Handler{
		Initialize:            s.initialize,
		Initialized:           s.initialized,
		Shutdown:              s.shutdown,
		SetTrace:              s.setTrace,
		TextDocumentDidOpen:   s.textDocumentDidOpen,
		TextDocumentDidChange: s.textDocumentDidChange,
		TextDocumentDidClose:  s.textDocumentDidClose,
		TextDocumentHover:     s.textDocumentHover,
	}

	s.server = server.NewServer(&s.handler, lsName, false)

	return s
}

func (s *Server) RunStdio() error {
	return s.server.RunStdio()
}

// Load indexes paths and replaces the resolver.
func (s *Server) Load(paths ...string) error {
	index, err := scanner.LoadIndex(paths...)
	if err != nil {
		return err
	}
	return s.useIndex(index)
}

func (s *Server) useIndex(index *java.Index) error {
	resolver, err := property.NewResolver(index, s.options)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.resolver = resolver
	s.mu.Unlock()
	log.Infof("indexed %d classes", index.Len())
	return nil
}

func (s *Server) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	if params.RootPath != nil && *params.RootPath != "" {
		s.rootDir = *params.RootPath
	} else if params.RootURI != nil && *params.RootURI != "" {
		if path, err := uriToPath(*params.RootURI); err == nil {
			s.rootDir = path
		}
	}

	capabilities := s.handler.CreateServerCapabilities()
	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    syncKindPtr(protocol.TextDocumentSyncKindFull),
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &s.version,
		},
	}, nil
}

func (s *Server) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	var paths []string
	for _, entry := range s.classpath {
		if !filepath.IsAbs(entry) {
			entry = filepath.Join(s.rootDir, entry)
		}
		paths = append(paths, entry)
	}
	if len(paths) == 0 {
		paths = []string{s.rootDir}
	}
	if err := s.Load(paths...); err != nil {
		log.Errorf("loading classpath: %s", err)
	}
	return nil
}

func (s *Server) shutdown(ctx *glsp.Context) error {
	return nil
}

func (s *Server) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (s *Server) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	s.mu.Lock()
	s.docs[params.TextDocument.URI] = params.TextDocument.Text
	s.mu.Unlock()
	return nil
}

func (s *Server) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) == 0 {
		return nil
	}
	change := params.ContentChanges[len(params.ContentChanges)-1]
	if whole, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
		s.mu.Lock()
		s.docs[params.TextDocument.URI] = whole.Text
		s.mu.Unlock()
	}
	return nil
}

func (s *Server) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.mu.Lock()
	delete(s.docs, params.TextDocument.URI)
	s.mu.Unlock()
	return nil
}

func (s *Server) textDocumentHover(ctx *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	s.mu.RLock()
	text, ok := s.docs[params.TextDocument.URI]
	resolver := s.resolver
	s.mu.RUnlock()
	if !ok || resolver == nil {
		return nil, nil
	}

	word, start, end := wordAt(text, int(params.Position.Line), int(params.Position.Character))
	if word == "" {
		return nil, nil
	}
	class := lookup(resolver.Index(), word, text)
	if class == nil {
		return nil, nil
	}
	props := resolver.Resolve(class, property.Context{})

	line := params.Position.Line
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.MarkupKindMarkdown,
			Value: markdown(class, props),
		},
		Range: &protocol.Range{
			Start: protocol.Position{Line: line, Character: protocol.UInteger(start)},
			End:   protocol.Position{Line: line, Character: protocol.UInteger(end)},
		},
	}, nil
}

func uriToPath(uri string) (string, error) {
	if strings.HasPrefix(uri, "file://") {
		parsed, err := url.Parse(uri)
		if err != nil {
			return "", fmt.Errorf("parsing uri %s: %w", uri, err)
		}
		return filepath.Clean(parsed.Path), nil
	}
	return uri, nil
}

func boolPtr(b bool) *bool {
	return &b
}

func syncKindPtr(k protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &k
}
