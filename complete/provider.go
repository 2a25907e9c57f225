// Copyright © 2026 The svgls authors

// Package complete turns a cursor position in SVG markup into completion
// candidates. Each call classifies the cursor context, recovers the
// surrounding structure from the buffer and asks a Generator for
// candidates; nothing is remembered between calls.
package complete

import (
	"context"

	"github.com/luthersystems/svgls/markup"
	"github.com/luthersystems/svgls/schema"
	"github.com/tliron/commonlog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/luthersystems/svgls/complete"

// Provider answers completion and hover requests against a catalog.
type Provider struct {
	catalog *schema.Catalog
	gen     *Generator
	log     commonlog.Logger
}

// Option configures a Provider.
type Option func(*Provider)

// WithLogger replaces the provider's logger.
func WithLogger(log commonlog.Logger) Option {
	return func(p *Provider) { p.log = log }
}

// NewProvider returns a provider for catalog.
func NewProvider(catalog *schema.Catalog, opts ...Option) *Provider {
	p := &Provider{
		catalog: catalog,
		gen:     NewGenerator(catalog),
		log:     commonlog.GetLogger("svgls.complete"),
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

// Catalog returns the catalog the provider draws from.
func (p *Provider) Catalog() *schema.Catalog {
	return p.catalog
}

// Complete returns the candidates for the cursor at pos, or nil when there
// are none. Failures of any kind, cancellation included, yield nil.
func (p *Provider) Complete(ctx context.Context, buf markup.Buffer, pos markup.Position) []Candidate {
	mctx := markup.ClassifyAt(buf, pos)
	ctx, span := otel.Tracer(tracerName).Start(ctx, "complete",
		trace.WithAttributes(
			attribute.String("svgls.context", mctx.String()),
			attribute.Int("svgls.line", pos.Line),
			attribute.Int("svgls.character", pos.Character),
		))
	defer span.End()

	var items []Candidate
	switch mctx {
	case markup.ContextTagOpen:
		items = p.tagCandidates(ctx, buf, pos)
	case markup.ContextAttributeName:
		items = p.attributeCandidates(buf, pos)
	case markup.ContextAttributeValue:
		items = p.valueCandidates(buf, pos)
	}
	span.SetAttributes(attribute.Int("svgls.candidates", len(items)))
	if len(items) == 0 {
		return nil
	}
	return items
}

func (p *Provider) tagCandidates(ctx context.Context, buf markup.Buffer, pos markup.Position) []Candidate {
	prefix := markup.TextBefore(buf, pos)
	if _, ok := markup.FindPrecedingTag(prefix); !ok {
		return p.gen.TagCompletions("", true, pos)
	}
	ancestor, err := p.parentElement(ctx, prefix)
	if err != nil {
		p.log.Debugf("ancestor scan stopped at %d:%d: %s", pos.Line, pos.Character, err)
		return nil
	}
	return p.gen.TagCompletions(ancestor, false, pos)
}

func (p *Provider) parentElement(ctx context.Context, prefix string) (string, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "parent-element",
		trace.WithAttributes(attribute.Int("svgls.prefix_bytes", len(prefix))))
	defer span.End()

	name, _, err := markup.FindParentElement(ctx, prefix)
	if err != nil {
		span.RecordError(err)
		return "", err
	}
	span.SetAttributes(attribute.String("svgls.parent", name))
	return name, nil
}

func (p *Provider) attributeCandidates(buf markup.Buffer, pos markup.Position) []Candidate {
	tag, ok := markup.FindEnclosingStartTag(markup.TextBefore(buf, pos))
	if !ok {
		return nil
	}
	return p.gen.AttributeCompletions(tag.Name, tag.Attrs)
}

func (p *Provider) valueCandidates(buf markup.Buffer, pos markup.Position) []Candidate {
	m, ok := markup.FindEnclosingAttribute(markup.TextBefore(buf, pos))
	if !ok {
		return nil
	}
	if _, ok := p.catalog.LookupElement(m.Tag); !ok {
		return nil
	}
	attr, ok := p.catalog.ResolveElementAttribute(m.Tag, m.Name)
	if !ok {
		return nil
	}
	return p.gen.EnumCompletions(attr)
}
