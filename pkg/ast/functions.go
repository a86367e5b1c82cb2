package ast

// FunctionTable maps function names to their definitions.
type FunctionTable map[string]*DefFunction

// CollectFunctions registers the DefFunction expressions that appear directly in
// the top-level block. Nested definitions are not registered. A later
// definition replaces an earlier one with the same name.
func CollectFunctions(program *BlockExpression) FunctionTable {
	table := make(FunctionTable)
	if program == nil {
		return table
	}
	for _, expr := range program.Expressions {
		if def, ok := expr.(*DefFunction); ok && def != nil {
			table[def.Name] = def
		}
	}
	return table
}

// Lookup returns the definition for name.
func (t FunctionTable) Lookup(name string) (*DefFunction, bool) {
	def, ok := t[name]
	return def, ok
}
