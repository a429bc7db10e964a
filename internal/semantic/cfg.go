package semantic

import (
	"loupe/internal/ast"
	"loupe/internal/source"
)

// CFG is a control-flow graph over the unit's top-level statements. Function
// bodies appear as opaque nodes; their internal flow is not expanded.
type CFG struct {
	Blocks []BasicBlock
	Edges  []Edge
}

// BasicBlock is a straight-line run of statements.
type BasicBlock struct {
	ID    int
	Lines []string
	Spans []source.Span
}

// Edge connects two blocks, optionally labeled (branch direction, loop back
// edge and the like).
type Edge struct {
	From  int
	To    int
	Label string
}

type cfgBuilder struct {
	cfg  *CFG
	cur  int
	exit int
	// loop stack for break/continue targets
	loops []loopCtx
}

type loopCtx struct {
	head int
	exit int
}

func buildCFG(program *ast.Program) *CFG {
	b := &cfgBuilder{cfg: &CFG{}}
	entry := b.newBlock()
	b.exit = b.newBlock()
	b.block(b.exit).Lines = append(b.block(b.exit).Lines, "exit")
	b.cur = entry

	for i := range program.Stmts {
		b.stmt(&program.Stmts[i])
	}
	b.edge(b.cur, b.exit, "")
	return b.cfg
}

func (b *cfgBuilder) newBlock() int {
	id := len(b.cfg.Blocks)
	b.cfg.Blocks = append(b.cfg.Blocks, BasicBlock{ID: id})
	return id
}

func (b *cfgBuilder) block(id int) *BasicBlock {
	return &b.cfg.Blocks[id]
}

func (b *cfgBuilder) edge(from, to int, label string) {
	b.cfg.Edges = append(b.cfg.Edges, Edge{From: from, To: to, Label: label})
}

func (b *cfgBuilder) add(s *ast.Stmt) {
	blk := b.block(b.cur)
	blk.Lines = append(blk.Lines, ast.StmtName(s.Data))
	blk.Spans = append(blk.Spans, s.Span)
}

func (b *cfgBuilder) stmt(s *ast.Stmt) {
	switch d := s.Data.(type) {
	case *ast.SIf:
		b.add(s)
		cond := b.cur
		thenStart := b.newBlock()
		b.edge(cond, thenStart, "true")
		b.cur = thenStart
		b.stmt(&d.Yes)
		thenEnd := b.cur

		join := b.newBlock()
		if d.No != nil {
			elseStart := b.newBlock()
			b.edge(cond, elseStart, "false")
			b.cur = elseStart
			b.stmt(d.No)
			b.edge(b.cur, join, "")
		} else {
			b.edge(cond, join, "false")
		}
		b.edge(thenEnd, join, "")
		b.cur = join
	case *ast.SWhile:
		head := b.newBlock()
		b.block(head).Lines = append(b.block(head).Lines, ast.StmtName(s.Data))
		b.block(head).Spans = append(b.block(head).Spans, s.Span)
		b.edge(b.cur, head, "")
		body := b.newBlock()
		exit := b.newBlock()
		b.edge(head, body, "true")
		b.edge(head, exit, "false")
		b.loops = append(b.loops, loopCtx{head: head, exit: exit})
		b.cur = body
		b.stmt(&d.Body)
		b.edge(b.cur, head, "loop")
		b.loops = b.loops[:len(b.loops)-1]
		b.cur = exit
	case *ast.SDoWhile:
		body := b.newBlock()
		exit := b.newBlock()
		b.edge(b.cur, body, "")
		b.loops = append(b.loops, loopCtx{head: body, exit: exit})
		b.cur = body
		b.add(s)
		b.stmt(&d.Body)
		b.edge(b.cur, body, "loop")
		b.edge(b.cur, exit, "false")
		b.loops = b.loops[:len(b.loops)-1]
		b.cur = exit
	case *ast.SFor:
		b.add(s)
		head := b.newBlock()
		b.edge(b.cur, head, "")
		body := b.newBlock()
		exit := b.newBlock()
		b.edge(head, body, "true")
		b.edge(head, exit, "false")
		b.loops = append(b.loops, loopCtx{head: head, exit: exit})
		b.cur = body
		b.stmt(&d.Body)
		b.edge(b.cur, head, "loop")
		b.loops = b.loops[:len(b.loops)-1]
		b.cur = exit
	case *ast.SForIn:
		b.add(s)
		head := b.newBlock()
		b.edge(b.cur, head, "")
		body := b.newBlock()
		exit := b.newBlock()
		b.edge(head, body, "next")
		b.edge(head, exit, "done")
		b.loops = append(b.loops, loopCtx{head: head, exit: exit})
		b.cur = body
		b.stmt(&d.Body)
		b.edge(b.cur, head, "loop")
		b.loops = b.loops[:len(b.loops)-1]
		b.cur = exit
	case *ast.SBlock:
		for i := range d.Stmts {
			b.stmt(&d.Stmts[i])
		}
	case *ast.SReturn, *ast.SThrow:
		b.add(s)
		b.edge(b.cur, b.exit, "")
		b.cur = b.newBlock()
	case *ast.SBreak:
		b.add(s)
		if len(b.loops) > 0 {
			b.edge(b.cur, b.loops[len(b.loops)-1].exit, "break")
		}
		b.cur = b.newBlock()
	case *ast.SContinue:
		b.add(s)
		if len(b.loops) > 0 {
			b.edge(b.cur, b.loops[len(b.loops)-1].head, "continue")
		}
		b.cur = b.newBlock()
	case *ast.STry:
		b.add(s)
		for i := range d.Body {
			b.stmt(&d.Body[i])
		}
		if d.Catch != nil {
			catchStart := b.newBlock()
			b.edge(b.cur, catchStart, "catch")
			after := b.newBlock()
			b.edge(b.cur, after, "")
			b.cur = catchStart
			for i := range d.Catch.Body {
				b.stmt(&d.Catch.Body[i])
			}
			b.edge(b.cur, after, "")
			b.cur = after
		}
		for i := range d.Finally {
			b.stmt(&d.Finally[i])
		}
	default:
		b.add(s)
	}
}
