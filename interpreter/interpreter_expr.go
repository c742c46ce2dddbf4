/*
File    : plox/interpreter/interpreter_expr.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package interpreter

import (
	"fmt"

	"github.com/akashmaji946/plox/ast"
	"github.com/akashmaji946/plox/function"
	"github.com/akashmaji946/plox/lexer"
	"github.com/akashmaji946/plox/objects"
)

// eval evaluates expr to a runtime value, or reports the first runtime
// error encountered.
func (interp *Interpreter) eval(expr ast.Expr) (objects.Value, error) {
	switch n := expr.(type) {
	case *ast.Literal:
		return literalValue(n.Value), nil

	case *ast.Grouping:
		return interp.eval(n.Expression)

	case *ast.Variable:
		return interp.lookUpVariable(n.Name, n)

	case *ast.Assignment:
		value, err := interp.eval(n.Value)
		if err != nil {
			return nil, err
		}
		if distance, ok := interp.Locals[n]; ok {
			interp.env.AssignAt(distance, n.Name.Literal, value)
		} else if !interp.Globals.Assign(n.Name.Literal, value) {
			return nil, &RuntimeError{Token: n.Name, Message: fmt.Sprintf("Undefined variable '%s'.", n.Name.Literal)}
		}
		return value, nil

	case *ast.Unary:
		return interp.evalUnary(n)

	case *ast.Binary:
		return interp.evalBinary(n)

	case *ast.Logical:
		return interp.evalLogical(n)

	case *ast.Call:
		return interp.evalCall(n)

	case *ast.Get:
		return interp.evalGet(n)

	case *ast.Set:
		return interp.evalSet(n)

	case *ast.This:
		return interp.lookUpVariable(n.Keyword, n)

	case *ast.AnonymousFn:
		return &function.Function{Params: tokenLiterals(n.Params), Body: n.Body, Closure: interp.env}, nil
	}

	return objects.NilValue, nil
}

// literalValue converts a parsed literal payload (float64, string, bool,
// or nil) into the corresponding runtime Value.
func literalValue(v any) objects.Value {
	switch val := v.(type) {
	case float64:
		return &objects.Number{Value: val}
	case string:
		return &objects.String{Value: val}
	case bool:
		return &objects.Boolean{Value: val}
	default:
		return objects.NilValue
	}
}

func (interp *Interpreter) evalUnary(n *ast.Unary) (objects.Value, error) {
	right, err := interp.eval(n.Right)
	if err != nil {
		return nil, err
	}

	switch n.Operator.Type {
	case lexer.MINUS_OP:
		num, ok := right.(*objects.Number)
		if !ok {
			return nil, &RuntimeError{Token: n.Operator, Message: "Operand must be a number."}
		}
		return &objects.Number{Value: -num.Value}, nil
	case lexer.NOT_OP:
		return &objects.Boolean{Value: !objects.Truthy(right)}, nil
	}
	return nil, &RuntimeError{Token: n.Operator, Message: "Unknown unary operator."}
}

func (interp *Interpreter) evalLogical(n *ast.Logical) (objects.Value, error) {
	left, err := interp.eval(n.Left)
	if err != nil {
		return nil, err
	}

	// Short-circuit: `or` returns its left operand if truthy without
	// evaluating the right; `and` returns its left operand if falsy.
	if n.Operator.Type == lexer.OR_KEY {
		if objects.Truthy(left) {
			return left, nil
		}
	} else {
		if !objects.Truthy(left) {
			return left, nil
		}
	}
	return interp.eval(n.Right)
}

func (interp *Interpreter) evalBinary(n *ast.Binary) (objects.Value, error) {
	left, err := interp.eval(n.Left)
	if err != nil {
		return nil, err
	}
	right, err := interp.eval(n.Right)
	if err != nil {
		return nil, err
	}

	switch n.Operator.Type {
	case lexer.PLUS_OP:
		if ln, lok := left.(*objects.Number); lok {
			if rn, rok := right.(*objects.Number); rok {
				return &objects.Number{Value: ln.Value + rn.Value}, nil
			}
		}
		if ls, lok := left.(*objects.String); lok {
			if rs, rok := right.(*objects.String); rok {
				return &objects.String{Value: ls.Value + rs.Value}, nil
			}
		}
		return nil, &RuntimeError{Token: n.Operator, Message: "Operands must be two numbers or two strings."}

	case lexer.MINUS_OP:
		ln, rn, err := interp.numberOperands(n.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return &objects.Number{Value: ln - rn}, nil

	case lexer.MUL_OP:
		ln, rn, err := interp.numberOperands(n.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return &objects.Number{Value: ln * rn}, nil

	case lexer.DIV_OP:
		ln, rn, err := interp.numberOperands(n.Operator, left, right)
		if err != nil {
			return nil, err
		}
		if rn == 0 {
			return nil, &RuntimeError{Token: n.Operator, Message: "Division by zero."}
		}
		return &objects.Number{Value: ln / rn}, nil

	case lexer.GT_OP:
		ln, rn, err := interp.numberOperands(n.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return &objects.Boolean{Value: ln > rn}, nil

	case lexer.GE_OP:
		ln, rn, err := interp.numberOperands(n.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return &objects.Boolean{Value: ln >= rn}, nil

	case lexer.LT_OP:
		ln, rn, err := interp.numberOperands(n.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return &objects.Boolean{Value: ln < rn}, nil

	case lexer.LE_OP:
		ln, rn, err := interp.numberOperands(n.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return &objects.Boolean{Value: ln <= rn}, nil

	case lexer.EQ_OP:
		return &objects.Boolean{Value: objects.Equal(left, right)}, nil

	case lexer.NE_OP:
		return &objects.Boolean{Value: !objects.Equal(left, right)}, nil
	}

	return nil, &RuntimeError{Token: n.Operator, Message: "Unknown binary operator."}
}

// numberOperands requires both left and right to be Numbers, returning a
// RuntimeError naming op's token otherwise.
func (interp *Interpreter) numberOperands(op lexer.Token, left, right objects.Value) (float64, float64, error) {
	ln, lok := left.(*objects.Number)
	rn, rok := right.(*objects.Number)
	if !lok || !rok {
		return 0, 0, &RuntimeError{Token: op, Message: "Operands must be numbers."}
	}
	return ln.Value, rn.Value, nil
}

func (interp *Interpreter) evalCall(n *ast.Call) (objects.Value, error) {
	callee, err := interp.eval(n.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]objects.Value, len(n.Args))
	for i, argExpr := range n.Args {
		v, err := interp.eval(argExpr)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	callable, ok := callee.(function.Callable)
	if !ok {
		return nil, &RuntimeError{Token: n.Paren, Message: "Can only call functions and classes."}
	}
	if len(args) != callable.Arity() {
		return nil, &RuntimeError{Token: n.Paren, Message: fmt.Sprintf("Expected %d arguments but got %d.", callable.Arity(), len(args))}
	}
	value, err := callable.Call(interp, args)
	if err != nil {
		return nil, err
	}
	return value, nil
}

func (interp *Interpreter) evalGet(n *ast.Get) (objects.Value, error) {
	object, err := interp.eval(n.Object)
	if err != nil {
		return nil, err
	}
	instance, ok := object.(*function.Instance)
	if !ok {
		return nil, &RuntimeError{Token: n.Name, Message: "Only instances have properties."}
	}
	value, ok := instance.Get(n.Name.Literal)
	if !ok {
		return nil, &RuntimeError{Token: n.Name, Message: fmt.Sprintf("Undefined property '%s'.", n.Name.Literal)}
	}
	return value, nil
}

func (interp *Interpreter) evalSet(n *ast.Set) (objects.Value, error) {
	object, err := interp.eval(n.Object)
	if err != nil {
		return nil, err
	}
	instance, ok := object.(*function.Instance)
	if !ok {
		return nil, &RuntimeError{Token: n.Name, Message: "Only instances have fields."}
	}
	value, err := interp.eval(n.Value)
	if err != nil {
		return nil, err
	}
	instance.Set(n.Name.Literal, value)
	return value, nil
}
