package ast

// Walk traverses the tree rooted at n in depth-first pre-order,
// calling visit for each node. If visit returns false the node's
// children are skipped. Nil children are not visited.
func Walk(n Node, visit func(Node) bool) {
	if n == nil || !visit(n) {
		return
	}
	switch n := n.(type) {
	case *File:
		for _, d := range n.Decls {
			Walk(d, visit)
		}

	case *ImportDecl:
		for _, seg := range n.Path {
			Walk(seg, visit)
		}

	case *TypeDecl:
		Walk(n.Name, visit)
		for _, p := range n.TypeParams {
			Walk(p, visit)
		}
		Walk(n.Rhs, visit)

	case *SumRhs:
		for _, c := range n.Constructors {
			Walk(c, visit)
		}

	case *ProductRhs:
		walkTypeFields(n.Fields, visit)

	case *ConstructorDecl:
		Walk(n.Name, visit)
		walkTypeFields(n.Named, visit)
		for _, t := range n.Positional {
			Walk(t, visit)
		}

	case *FnDecl:
		if n.TypeName != nil {
			Walk(n.TypeName, visit)
		}
		Walk(n.Name, visit)
		for _, p := range n.TypeParams {
			Walk(p, visit)
		}
		for _, p := range n.Predicates {
			Walk(p, visit)
		}
		for _, p := range n.Params {
			Walk(p, visit)
		}
		if n.ReturnType != nil {
			Walk(n.ReturnType, visit)
		}
		walkStmts(n.Body, visit)

	case *Param:
		Walk(n.Name, visit)
		Walk(n.Type, visit)

	case *LetStmt:
		Walk(n.Pat, visit)
		if n.Type != nil {
			Walk(n.Type, visit)
		}
		Walk(n.Value, visit)

	case *AssignStmt:
		Walk(n.Target, visit)
		Walk(n.Value, visit)

	case *ExprStmt:
		Walk(n.Expr, visit)

	case *ForStmt:
		Walk(n.Var, visit)
		Walk(n.Iter, visit)
		walkStmts(n.Body, visit)

	case *WhileStmt:
		Walk(n.Cond, visit)
		walkStmts(n.Body, visit)

	case *NamedType:
		Walk(n.Name, visit)
		for _, a := range n.Args {
			Walk(a, visit)
		}

	case *RecordType:
		walkTypeFields(n.Fields, visit)

	case *TypeField:
		if n.Name != nil {
			Walk(n.Name, visit)
		}
		Walk(n.Type, visit)

	case *StringLit:
		for _, p := range n.Parts {
			Walk(p, visit)
		}

	case *StringPart:
		if n.Expr != nil {
			Walk(n.Expr, visit)
		}

	case *RecordExpr:
		for _, f := range n.Fields {
			Walk(f, visit)
		}

	case *RecordField:
		if n.Name != nil {
			Walk(n.Name, visit)
		}
		Walk(n.Value, visit)

	case *IndexExpr:
		Walk(n.Target, visit)
		Walk(n.Index, visit)

	case *CallExpr:
		Walk(n.Callee, visit)
		for _, a := range n.Args {
			Walk(a, visit)
		}

	case *FieldExpr:
		Walk(n.Target, visit)
		Walk(n.Field, visit)

	case *ConstrSelectExpr:
		Walk(n.Target, visit)
		Walk(n.Constr, visit)

	case *RangeExpr:
		Walk(n.Low, visit)
		Walk(n.High, visit)

	case *PrefixExpr:
		Walk(n.Operand, visit)

	case *InfixExpr:
		Walk(n.Left, visit)
		Walk(n.Right, visit)

	case *ReturnExpr:
		if n.Value != nil {
			Walk(n.Value, visit)
		}

	case *IfExpr:
		for _, b := range n.Branches {
			Walk(b, visit)
		}
		walkStmts(n.Else, visit)

	case *IfBranch:
		Walk(n.Cond, visit)
		walkStmts(n.Body, visit)

	case *MatchExpr:
		Walk(n.Subject, visit)
		for _, a := range n.Arms {
			Walk(a, visit)
		}

	case *MatchArm:
		Walk(n.Pat, visit)
		walkStmts(n.Body, visit)

	case *VarPat:
		Walk(n.Name, visit)

	case *ConstrPat:
		if n.Type != nil {
			Walk(n.Type, visit)
		}
		Walk(n.Name, visit)
		for _, f := range n.Fields {
			Walk(f, visit)
		}

	case *RecordPat:
		for _, f := range n.Fields {
			Walk(f, visit)
		}

	case *PatField:
		if n.Name != nil {
			Walk(n.Name, visit)
		}
		Walk(n.Pat, visit)

	case *StringPrefixPat:
		Walk(n.Rest, visit)

	case *OrPat:
		Walk(n.Left, visit)
		Walk(n.Right, visit)
	}
}

func walkStmts(stmts []Stmt, visit func(Node) bool) {
	for _, s := range stmts {
		Walk(s, visit)
	}
}

func walkTypeFields(fields []*TypeField, visit func(Node) bool) {
	for _, f := range fields {
		Walk(f, visit)
	}
}
