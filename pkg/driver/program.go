package driver

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"nub/interpreter-go/pkg/ast"
)

// DecodeProgram parses a serialized program. JSON and YAML sources are both
// accepted. The top level is either a BlockExpression node, any other single
// expression, or a list of expressions treated as an implicit block.
func DecodeProgram(data []byte) (*ast.BlockExpression, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("driver: parse program: %w", err)
	}
	if raw == nil {
		return nil, fmt.Errorf("driver: program is empty")
	}
	if list, ok := raw.([]any); ok {
		exprs, err := decodeExpressionList(list, "program")
		if err != nil {
			return nil, err
		}
		return ast.NewBlockExpression(exprs), nil
	}
	expr, err := decodeExpression(raw, "program")
	if err != nil {
		return nil, err
	}
	if block, ok := expr.(*ast.BlockExpression); ok {
		return block, nil
	}
	return ast.NewBlockExpression([]ast.Expression{expr}), nil
}

// LoadProgram reads and decodes a .json, .yml or .yaml program file.
func LoadProgram(path string) (*ast.BlockExpression, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".yml", ".yaml":
	default:
		return nil, fmt.Errorf("driver: unsupported program file %s", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("driver: read %s: %w", path, err)
	}
	program, err := DecodeProgram(data)
	if err != nil {
		return nil, fmt.Errorf("driver: load %s: %w", path, err)
	}
	return program, nil
}

// EncodeProgram renders program as indented JSON in the format DecodeProgram reads.
func EncodeProgram(program *ast.BlockExpression) ([]byte, error) {
	if program == nil {
		return nil, fmt.Errorf("driver: program is nil")
	}
	data, err := json.MarshalIndent(program, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("driver: encode program: %w", err)
	}
	return data, nil
}

// decodeExpressionList returns nil for an empty list, matching the builders.
func decodeExpressionList(list []any, path string) ([]ast.Expression, error) {
	if len(list) == 0 {
		return nil, nil
	}
	exprs := make([]ast.Expression, 0, len(list))
	for idx, raw := range list {
		expr, err := decodeExpression(raw, fmt.Sprintf("%s[%d]", path, idx))
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, expr)
	}
	return exprs, nil
}

func decodeExpression(raw any, path string) (ast.Expression, error) {
	node, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("driver: %s: expected node object, got %T", path, raw)
	}
	return decodeNode(node, path)
}

func decodeNode(node map[string]any, path string) (ast.Expression, error) {
	typ, _ := node["type"].(string)
	if typ == "" {
		return nil, fmt.Errorf("driver: %s: node missing type", path)
	}
	path = path + "(" + typ + ")"
	switch ast.NodeType(typ) {
	case ast.NodeIntegerLiteral:
		val, err := decodeInt(node["value"], path)
		if err != nil {
			return nil, err
		}
		return ast.NewIntegerLiteral(val), nil
	case ast.NodeStringLiteral:
		val, ok := node["value"].(string)
		if !ok {
			return nil, fmt.Errorf("driver: %s: value must be a string", path)
		}
		return ast.NewStringLiteral(val), nil
	case ast.NodeBooleanLiteral:
		val, ok := node["value"].(bool)
		if !ok {
			return nil, fmt.Errorf("driver: %s: value must be a boolean", path)
		}
		return ast.NewBooleanLiteral(val), nil
	case ast.NodeIdentifier:
		name, err := decodeName(node, path)
		if err != nil {
			return nil, err
		}
		return ast.NewIdentifier(name), nil
	case ast.NodeBinaryExpression:
		op, _ := node["operator"].(string)
		if !ast.BinaryOperator(op).Valid() {
			return nil, fmt.Errorf("driver: %s: unsupported operator %q", path, op)
		}
		left, err := decodeChild(node, "left", path)
		if err != nil {
			return nil, err
		}
		right, err := decodeChild(node, "right", path)
		if err != nil {
			return nil, err
		}
		return ast.NewBinaryExpression(ast.BinaryOperator(op), left, right), nil
	case ast.NodeLetExpression:
		name, err := decodeName(node, path)
		if err != nil {
			return nil, err
		}
		init, err := decodeChild(node, "init", path)
		if err != nil {
			return nil, err
		}
		return ast.NewLetExpression(name, init), nil
	case ast.NodeAssignmentExpression:
		name, err := decodeName(node, path)
		if err != nil {
			return nil, err
		}
		value, err := decodeChild(node, "value", path)
		if err != nil {
			return nil, err
		}
		return ast.NewAssignmentExpression(name, value), nil
	case ast.NodeIfExpression:
		cond, err := decodeChild(node, "condition", path)
		if err != nil {
			return nil, err
		}
		then, err := decodeBlock(node, "then", path)
		if err != nil {
			return nil, err
		}
		els, err := decodeBlock(node, "else", path)
		if err != nil {
			return nil, err
		}
		return ast.NewIfExpression(cond, then, els), nil
	case ast.NodeWhileExpression:
		cond, err := decodeChild(node, "condition", path)
		if err != nil {
			return nil, err
		}
		bodyRaw, _ := node["body"].([]any)
		body, err := decodeExpressionList(bodyRaw, path+".body")
		if err != nil {
			return nil, err
		}
		return ast.NewWhileExpression(cond, body), nil
	case ast.NodePrintlnExpression:
		target, err := decodeChild(node, "target", path)
		if err != nil {
			return nil, err
		}
		return ast.NewPrintlnExpression(target), nil
	case ast.NodePrintExpression:
		target, err := decodeChild(node, "target", path)
		if err != nil {
			return nil, err
		}
		return ast.NewPrintExpression(target), nil
	case ast.NodeBlockExpression:
		raw, _ := node["expressions"].([]any)
		exprs, err := decodeExpressionList(raw, path+".expressions")
		if err != nil {
			return nil, err
		}
		return ast.NewBlockExpression(exprs), nil
	case ast.NodeDefFunction:
		return decodeDefFunction(node, path)
	case ast.NodeFunctionCall:
		name, err := decodeName(node, path)
		if err != nil {
			return nil, err
		}
		raw, _ := node["arguments"].([]any)
		args, err := decodeExpressionList(raw, path+".arguments")
		if err != nil {
			return nil, err
		}
		return ast.NewFunctionCall(name, args), nil
	default:
		return nil, fmt.Errorf("driver: %s: unsupported node type", path)
	}
}

func decodeDefFunction(node map[string]any, path string) (ast.Expression, error) {
	name, err := decodeName(node, path)
	if err != nil {
		return nil, err
	}
	returnType, err := decodeType(node["returnType"], path+".returnType")
	if err != nil {
		return nil, err
	}
	paramsRaw, _ := node["params"].([]any)
	var params []*ast.FunctionParameter
	for idx, raw := range paramsRaw {
		paramPath := fmt.Sprintf("%s.params[%d]", path, idx)
		paramNode, ok := raw.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("driver: %s: expected parameter object, got %T", paramPath, raw)
		}
		paramName, err := decodeName(paramNode, paramPath)
		if err != nil {
			return nil, err
		}
		paramType, err := decodeType(paramNode["paramType"], paramPath+".paramType")
		if err != nil {
			return nil, err
		}
		params = append(params, ast.NewFunctionParameter(paramName, paramType))
	}
	body, err := decodeBlock(node, "body", path)
	if err != nil {
		return nil, err
	}
	return ast.NewDefFunction(name, params, returnType, body), nil
}

func decodeChild(node map[string]any, field, path string) (ast.Expression, error) {
	raw, ok := node[field]
	if !ok || raw == nil {
		return nil, fmt.Errorf("driver: %s: missing %s", path, field)
	}
	return decodeExpression(raw, path+"."+field)
}

// decodeBlock accepts a BlockExpression node or a bare list of expressions.
func decodeBlock(node map[string]any, field, path string) (*ast.BlockExpression, error) {
	raw, ok := node[field]
	if !ok || raw == nil {
		return nil, fmt.Errorf("driver: %s: missing %s", path, field)
	}
	if list, ok := raw.([]any); ok {
		exprs, err := decodeExpressionList(list, path+"."+field)
		if err != nil {
			return nil, err
		}
		return ast.NewBlockExpression(exprs), nil
	}
	expr, err := decodeExpression(raw, path+"."+field)
	if err != nil {
		return nil, err
	}
	block, ok := expr.(*ast.BlockExpression)
	if !ok {
		return nil, fmt.Errorf("driver: %s.%s: expected BlockExpression, got %s", path, field, expr.NodeType())
	}
	return block, nil
}

func decodeName(node map[string]any, path string) (string, error) {
	name, _ := node["name"].(string)
	if name == "" {
		return "", fmt.Errorf("driver: %s: missing name", path)
	}
	return name, nil
}

func decodeType(raw any, path string) (ast.Type, error) {
	name, ok := raw.(string)
	if !ok {
		return 0, fmt.Errorf("driver: %s: type must be a string", path)
	}
	typ, err := ast.ParseType(name)
	if err != nil {
		return 0, fmt.Errorf("driver: %s: %w", path, err)
	}
	return typ, nil
}

func decodeInt(raw any, path string) (int64, error) {
	switch v := raw.(type) {
	case int:
		return int64(v), nil
	case int64:
		return v, nil
	case uint64:
		if v > math.MaxInt64 {
			return 0, fmt.Errorf("driver: %s: integer %d overflows Int", path, v)
		}
		return int64(v), nil
	case float64:
		if v != math.Trunc(v) || v < math.MinInt64 || v >= math.MaxInt64 {
			return 0, fmt.Errorf("driver: %s: %v is not an Int", path, v)
		}
		return int64(v), nil
	default:
		return 0, fmt.Errorf("driver: %s: value must be an integer, got %T", path, raw)
	}
}
