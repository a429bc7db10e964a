package semantic

import (
	"loupe/internal/ast"
	"loupe/internal/diag"
	"loupe/internal/source"
)

// Builder configures one semantic pass.
type Builder struct {
	// CheckSyntax enables re-checking for errors the parser cannot see,
	// e.g. duplicate lexical bindings.
	CheckSyntax bool
	// BuildCFG requests a control-flow graph as a side product.
	BuildCFG bool
	// ExcessCapacity pre-sizes the tables by the given factor. The transform
	// stage roughly triples the scope/symbol/reference population, so the
	// driver passes 2.0 when a transform is requested. Purely a hint.
	ExcessCapacity float64
}

// Result is the complete output of one semantic pass.
type Result struct {
	Scoping *Scoping
	CFG     *CFG
	Errors  []diag.Diagnostic
}

// Build walks the tree once, building the scope tree and declaring every
// binding, then resolves collected references against the finished tables.
// The tree is annotated in place with symbol and reference ids.
func (b Builder) Build(program *ast.Program) Result {
	base := len(program.Stmts) + 1
	capacity := int(float64(base) * (1.0 + b.ExcessCapacity))

	w := &walker{
		sc: &Scoping{
			scopes:     make([]Scope, 0, capacity),
			symbols:    make([]Symbol, 0, capacity*2),
			references: make([]Reference, 0, capacity*4),
		},
		check: b.CheckSyntax,
	}

	w.enterScope(ScopeTop)
	for i := range program.Stmts {
		w.stmt(&program.Stmts[i])
	}
	w.leaveScope()

	w.resolve()

	res := Result{Scoping: w.sc, Errors: w.errors}
	if b.BuildCFG {
		res.CFG = buildCFG(program)
	}
	return res
}

type pendingRef struct {
	ref   ast.ReferenceID
	name  string
	scope ast.ScopeID
}

type walker struct {
	sc      *Scoping
	stack   []ast.ScopeID
	pending []pendingRef
	errors  []diag.Diagnostic
	check   bool
}

func (w *walker) enterScope(flags ScopeFlags) ast.ScopeID {
	id := ast.ScopeID(len(w.sc.scopes))
	parent := ast.NoScope
	if len(w.stack) > 0 {
		parent = w.stack[len(w.stack)-1]
	}
	w.sc.scopes = append(w.sc.scopes, Scope{ID: id, Flags: flags, Parent: parent})
	if parent.IsValid() {
		p := &w.sc.scopes[parent]
		p.Children = append(p.Children, id)
	}
	w.stack = append(w.stack, id)
	return id
}

func (w *walker) leaveScope() {
	w.stack = w.stack[:len(w.stack)-1]
}

func (w *walker) current() ast.ScopeID {
	return w.stack[len(w.stack)-1]
}

// hoistTarget finds the nearest enclosing var-scope (function or program).
func (w *walker) hoistTarget() ast.ScopeID {
	for i := len(w.stack) - 1; i >= 0; i-- {
		id := w.stack[i]
		if w.sc.scopes[id].Flags&(ScopeTop|ScopeFunction) != 0 {
			return id
		}
	}
	return w.stack[0]
}

func (w *walker) declare(scope ast.ScopeID, name string, span source.Span, flags SymbolFlags) ast.SymbolID {
	s := &w.sc.scopes[scope]
	for _, binding := range s.Bindings {
		if binding.Name != name {
			continue
		}
		existing := &w.sc.symbols[binding.Sym]
		if w.check && (flags.IsLexical() || existing.Flags.IsLexical()) {
			w.errors = append(w.errors,
				diag.Errorf("Identifier '%s' has already been declared", name).
					WithLabel(existing.Span, "'"+name+"' is first declared here").
					WithLabel(span, "it cannot be redeclared here"))
		}
		existing.Flags |= flags
		return binding.Sym
	}
	id := ast.SymbolID(len(w.sc.symbols))
	w.sc.symbols = append(w.sc.symbols, Symbol{
		ID:    id,
		Name:  name,
		Span:  span,
		Flags: flags,
		Scope: scope,
	})
	s.Bindings = append(s.Bindings, Binding{Name: name, Sym: id})
	return id
}

func (w *walker) addRef(ident *ast.EIdent, span source.Span, flags ReferenceFlags) {
	id := ast.ReferenceID(len(w.sc.references))
	ident.Ref = id
	w.sc.references = append(w.sc.references, Reference{
		ID:    id,
		Span:  span,
		Flags: flags,
		Sym:   ast.NoSymbol,
	})
	w.pending = append(w.pending, pendingRef{ref: id, name: ident.Name, scope: w.current()})
}

// addNameRef records a reference that has no identifier node, e.g. an export
// specifier.
func (w *walker) addNameRef(name string, span source.Span, flags ReferenceFlags) ast.ReferenceID {
	id := ast.ReferenceID(len(w.sc.references))
	w.sc.references = append(w.sc.references, Reference{
		ID:    id,
		Span:  span,
		Flags: flags,
		Sym:   ast.NoSymbol,
	})
	w.pending = append(w.pending, pendingRef{ref: id, name: name, scope: w.current()})
	return id
}

// resolve links every collected reference to a symbol by scope-chain lookup.
// Unmatched names stay unresolved: they are globals from the unit's point of
// view.
func (w *walker) resolve() {
	for _, pr := range w.pending {
		scope := pr.scope
		for scope.IsValid() {
			s := &w.sc.scopes[scope]
			found := false
			for _, binding := range s.Bindings {
				if binding.Name == pr.name {
					w.sc.references[pr.ref].Sym = binding.Sym
					sym := &w.sc.symbols[binding.Sym]
					sym.Refs = append(sym.Refs, pr.ref)
					found = true
					break
				}
			}
			if found {
				break
			}
			scope = s.Parent
		}
	}
}

func varFlags(kind ast.VarKind) SymbolFlags {
	switch kind {
	case ast.VarLet:
		return SymBlockScopedVariable
	case ast.VarConst:
		return SymBlockScopedVariable | SymConstVariable
	}
	return SymFunctionScopedVariable
}

func (w *walker) stmt(s *ast.Stmt) {
	switch d := s.Data.(type) {
	case *ast.SVar:
		w.varDecl(d)
	case *ast.SFunction:
		if d.Fn.Name != "" {
			d.Fn.Sym = w.declare(w.current(), d.Fn.Name, d.Fn.NameSpan, SymFunction)
		}
		w.fn(&d.Fn, ScopeFunction, false)
	case *ast.SReturn:
		if d.Value != nil {
			w.expr(d.Value)
		}
	case *ast.SIf:
		w.expr(&d.Test)
		w.stmt(&d.Yes)
		if d.No != nil {
			w.stmt(d.No)
		}
	case *ast.SWhile:
		w.expr(&d.Test)
		w.stmt(&d.Body)
	case *ast.SDoWhile:
		w.stmt(&d.Body)
		w.expr(&d.Test)
	case *ast.SFor:
		scoped := forInitIsLexical(d.Init)
		if scoped {
			w.enterScope(0)
		}
		if d.Init != nil {
			w.stmt(d.Init)
		}
		if d.Test != nil {
			w.expr(d.Test)
		}
		if d.Update != nil {
			w.expr(d.Update)
		}
		w.stmt(&d.Body)
		if scoped {
			w.leaveScope()
		}
	case *ast.SForIn:
		scoped := forInitIsLexical(&d.Init)
		if scoped {
			w.enterScope(0)
		}
		w.stmt(&d.Init)
		w.expr(&d.Value)
		w.stmt(&d.Body)
		if scoped {
			w.leaveScope()
		}
	case *ast.SBlock:
		w.enterScope(0)
		for i := range d.Stmts {
			w.stmt(&d.Stmts[i])
		}
		w.leaveScope()
	case *ast.SExpr:
		w.expr(&d.Value)
	case *ast.SThrow:
		w.expr(&d.Value)
	case *ast.STry:
		w.enterScope(0)
		for i := range d.Body {
			w.stmt(&d.Body[i])
		}
		w.leaveScope()
		if d.Catch != nil {
			w.enterScope(ScopeCatch)
			if d.Catch.Name != "" {
				d.Catch.Sym = w.declare(w.current(), d.Catch.Name, d.Catch.NameSpan, SymCatchVariable)
			}
			for i := range d.Catch.Body {
				w.stmt(&d.Catch.Body[i])
			}
			w.leaveScope()
		}
		if d.HasFinally {
			w.enterScope(0)
			for i := range d.Finally {
				w.stmt(&d.Finally[i])
			}
			w.leaveScope()
		}
	case *ast.SImport:
		if d.Default != "" {
			d.DefaultSym = w.declare(w.current(), d.Default, d.DefaultSpan, SymImport)
		}
		if d.Namespace != "" {
			d.NamespaceSym = w.declare(w.current(), d.Namespace, d.NamespaceSpan, SymImport)
		}
		for i := range d.Names {
			in := &d.Names[i]
			local, localSpan := in.Name, in.NameSpan
			if in.Alias != "" {
				local, localSpan = in.Alias, in.AliasSpan
			}
			in.Sym = w.declare(w.current(), local, localSpan, SymImport)
		}
	case *ast.SExportNamed:
		if d.Decl != nil {
			w.stmt(d.Decl)
		}
		for i := range d.Names {
			en := &d.Names[i]
			en.Ref = w.addNameRef(en.Name, en.NameSpan, RefRead)
		}
	case *ast.SExportDefault:
		w.expr(&d.Value)
	case *ast.STypeAlias:
		d.Sym = w.declare(w.current(), d.Name, d.NameSpan, SymTypeAlias)
	case *ast.SEmpty, *ast.SDebugger, *ast.SBreak, *ast.SContinue:
	}
}

func forInitIsLexical(init *ast.Stmt) bool {
	if init == nil {
		return false
	}
	if v, ok := init.Data.(*ast.SVar); ok {
		return v.Kind != ast.VarVar
	}
	return false
}

func (w *walker) varDecl(d *ast.SVar) {
	flags := varFlags(d.Kind)
	target := w.current()
	if d.Kind == ast.VarVar {
		target = w.hoistTarget()
	}
	for i := range d.Decls {
		dec := &d.Decls[i]
		dec.Sym = w.declare(target, dec.Name, dec.NameSpan, flags)
		if dec.Init != nil {
			w.expr(dec.Init)
		}
	}
}

// fn walks a function-like node. Function expression names bind inside the
// function's own scope; declaration names are bound by the caller.
func (w *walker) fn(f *ast.Fn, flags ScopeFlags, nameInside bool) {
	w.enterScope(flags)
	if nameInside && f.Name != "" {
		f.Sym = w.declare(w.current(), f.Name, f.NameSpan, SymFunction)
	}
	for i := range f.Params {
		p := &f.Params[i]
		p.Sym = w.declare(w.current(), p.Name, p.NameSpan, SymFunctionScopedVariable)
		if p.Default != nil {
			w.expr(p.Default)
		}
	}
	for i := range f.Body {
		w.stmt(&f.Body[i])
	}
	w.leaveScope()
}

func (w *walker) expr(e *ast.Expr) {
	switch d := e.Data.(type) {
	case *ast.EIdent:
		if d.Name != "" {
			w.addRef(d, e.Span, RefRead)
		}
	case *ast.EArray:
		for i := range d.Items {
			w.expr(&d.Items[i])
		}
	case *ast.EObject:
		for i := range d.Props {
			w.expr(&d.Props[i].Value)
		}
	case *ast.EUnary:
		w.expr(&d.Value)
	case *ast.EUpdate:
		if ident, ok := d.Value.Data.(*ast.EIdent); ok {
			w.addRef(ident, d.Value.Span, RefRead|RefWrite)
		} else {
			w.expr(&d.Value)
		}
	case *ast.EBinary:
		if d.Op.IsAssign() {
			if ident, ok := d.Left.Data.(*ast.EIdent); ok {
				flags := RefWrite
				if d.Op != ast.BinAssign {
					flags |= RefRead
				}
				w.addRef(ident, d.Left.Span, flags)
			} else {
				w.expr(&d.Left)
			}
			w.expr(&d.Right)
			return
		}
		w.expr(&d.Left)
		w.expr(&d.Right)
	case *ast.ECond:
		w.expr(&d.Test)
		w.expr(&d.Yes)
		w.expr(&d.No)
	case *ast.ECall:
		w.expr(&d.Target)
		for i := range d.Args {
			w.expr(&d.Args[i])
		}
	case *ast.ENew:
		w.expr(&d.Target)
		for i := range d.Args {
			w.expr(&d.Args[i])
		}
	case *ast.EDot:
		w.expr(&d.Target)
	case *ast.EIndex:
		w.expr(&d.Target)
		w.expr(&d.Index)
	case *ast.EArrow:
		w.fn(&d.Fn, ScopeFunction|ScopeArrow, false)
	case *ast.EFunction:
		w.fn(&d.Fn, ScopeFunction, true)
	case *ast.EParen:
		w.expr(&d.Value)
	case *ast.ESequence:
		for i := range d.Exprs {
			w.expr(&d.Exprs[i])
		}
	case *ast.ESpread:
		w.expr(&d.Value)
	case *ast.EIntrinsic:
		for i := range d.Args {
			w.expr(&d.Args[i])
		}
	}
}
