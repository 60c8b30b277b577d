package table

import (
	"github.com/RobertLuptonTheGood/eups/pkg/errors"
	"github.com/RobertLuptonTheGood/eups/pkg/version"
)

// Env is the small set of terminals a table-file `if` condition may refer
// to. FLAVOR and BUILD are substituted into CompareCond operands before
// they're evaluated; any other bare identifier is left as literal text.
type Env struct {
	Flavor string
	Build  string
}

func (e Env) substitute(operand string) string {
	switch operand {
	case "FLAVOR":
		return e.Flavor
	case "BUILD":
		return e.Build
	default:
		return operand
	}
}

// Evaluate walks a Cond tree and returns its boolean value under env.
func Evaluate(c Cond, env Env) (bool, error) {
	switch n := c.(type) {
	case AndCond:
		l, err := Evaluate(n.Left, env)
		if err != nil {
			return false, err
		}
		r, err := Evaluate(n.Right, env)
		if err != nil {
			return false, err
		}
		return l && r, nil
	case OrCond:
		l, err := Evaluate(n.Left, env)
		if err != nil {
			return false, err
		}
		r, err := Evaluate(n.Right, env)
		if err != nil {
			return false, err
		}
		return l || r, nil
	case NotCond:
		inner, err := Evaluate(n.Inner, env)
		if err != nil {
			return false, err
		}
		return !inner, nil
	case CompareCond:
		return evalCompare(n, env)
	default:
		return false, errors.Newf(errors.CodeTableParseError, "unknown condition node %T", c)
	}
}

func evalCompare(n CompareCond, env Env) (bool, error) {
	left := env.substitute(n.Left)
	right := env.substitute(n.Right)

	switch n.Op {
	case "==":
		return left == right, nil
	case "!=":
		return left != right, nil
	case "<", "<=", ">", ">=":
		c := version.Compare(left, right)
		switch n.Op {
		case "<":
			return c < 0, nil
		case "<=":
			return c <= 0, nil
		case ">":
			return c > 0, nil
		default:
			return c >= 0, nil
		}
	default:
		return false, errors.Newf(errors.CodeTableParseError, "unsupported comparison operator %q", n.Op)
	}
}
