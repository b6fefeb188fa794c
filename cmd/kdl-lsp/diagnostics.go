package main

import (
	"context"
	"fmt"
	"sync"

	"github.com/ferronweb/kdlite/diag"
	"github.com/ferronweb/kdlite/ir"
	"github.com/ferronweb/kdlite/parse"
	"github.com/ferronweb/kdlite/token"
	"go.lsp.dev/protocol"
)

type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

type document struct {
	uri       string
	content   string
	version   int32
	doc       *ir.Document
	diags     diag.List
	positions map[*ir.Node]token.Span
}

func (ds *documentStore) get(uri string) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

func (ds *documentStore) put(uri string, content string, version int32) {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	positions := make(map[*ir.Node]token.Span)
	doc, diags := parse.Parse([]byte(content), parse.ParsePositions(positions))
	ds.docs[uri] = &document{
		uri:       uri,
		content:   content,
		version:   version,
		doc:       doc,
		diags:     diags,
		positions: positions,
	}
}

func (ds *documentStore) remove(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}

func (s *Server) publishDiagnostics(ctx context.Context, uri string) {
	doc := s.docs.get(uri)
	if doc == nil || s.conn == nil {
		return
	}
	s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
		URI:         protocol.DocumentURI(uri),
		Diagnostics: lspDiagnostics(doc.diags),
	})
}

func lspDiagnostics(diags diag.List) []protocol.Diagnostic {
	res := []protocol.Diagnostic{}
	for _, d := range diags {
		res = append(res, protocol.Diagnostic{
			Range:    lspRange(d.Span),
			Severity: protocol.DiagnosticSeverityError,
			Message:  fmt.Sprintf("%s: %s", d.Kind, d.Msg),
			Source:   "kdl",
		})
	}
	return res
}

func lspRange(sp token.Span) protocol.Range {
	if sp.D == nil {
		return protocol.Range{}
	}
	sl, sc := sp.D.LineCol(sp.Start)
	el, ec := sp.D.LineCol(sp.End)
	return protocol.Range{
		Start: protocol.Position{Line: uint32(sl), Character: uint32(sc)},
		End:   protocol.Position{Line: uint32(el), Character: uint32(ec)},
	}
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	s.docs.put(string(params.TextDocument.URI), params.TextDocument.Text, params.TextDocument.Version)
	s.publishDiagnostics(ctx, string(params.TextDocument.URI))
	return nil
}

func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil
	}
	content := doc.content
	for _, change := range params.ContentChanges {
		rangeVal := change.Range
		if rangeVal.Start.Line == 0 && rangeVal.Start.Character == 0 && rangeVal.End.Line == 0 && rangeVal.End.Character == 0 {
			// full document replacement
			content = change.Text
		} else {
			startOffset := lineColToOffset(content, int(rangeVal.Start.Line), int(rangeVal.Start.Character))
			endOffset := lineColToOffset(content, int(rangeVal.End.Line), int(rangeVal.End.Character))
			if startOffset <= len(content) && endOffset <= len(content) && startOffset <= endOffset {
				content = content[:startOffset] + change.Text + content[endOffset:]
			}
		}
	}
	s.docs.put(string(params.TextDocument.URI), content, params.TextDocument.Version)
	s.publishDiagnostics(ctx, string(params.TextDocument.URI))
	return nil
}

func (s *Server) DidSave(ctx context.Context, params *protocol.DidSaveTextDocumentParams) error {
	s.publishDiagnostics(ctx, string(params.TextDocument.URI))
	return nil
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.docs.remove(string(params.TextDocument.URI))
	return nil
}

func lineColToOffset(content string, line, col int) int {
	currentLine := 0
	lineStart := 0
	for i := 0; i < len(content); i++ {
		if currentLine == line {
			lineStart = i
			break
		}
		if content[i] == '\n' {
			currentLine++
			lineStart = i + 1
		}
	}
	if currentLine < line {
		return len(content)
	}
	off := lineStart + col
	if off > len(content) {
		return len(content)
	}
	return off
}
