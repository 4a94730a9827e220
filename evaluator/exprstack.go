package evaluator

import (
	"github.com/emirpasic/gods/stacks/linkedliststack"
)

// ExprStack is a stack of numeric operands, used while reducing a postfix
// token sequence. A fresh stack is created per evaluation call; stacks are
// never shared.
type ExprStack struct {
	stack *linkedliststack.Stack // a stack of float64
}

// NewExprStack creates a new, empty operand stack.
func NewExprStack() *ExprStack {
	return &ExprStack{
		stack: linkedliststack.New(),
	}
}

// Push puts an operand on the stack. Returns the stack for chaining.
func (es *ExprStack) Push(v float64) *ExprStack {
	es.stack.Push(v)
	return es
}

// Pop removes the top operand from the stack and returns it.
func (es *ExprStack) Pop() (float64, bool) {
	tos, ok := es.stack.Pop()
	if !ok {
		return 0, false
	}
	return tos.(float64), true
}

// Top returns the top operand without removing it.
func (es *ExprStack) Top() (float64, bool) {
	tos, ok := es.stack.Peek()
	if !ok {
		return 0, false
	}
	return tos.(float64), true
}

// IsEmpty is a predicate: is the stack empty?
func (es *ExprStack) IsEmpty() bool {
	return es.stack.Empty()
}

// Size returns the operand count.
func (es *ExprStack) Size() int {
	return es.stack.Size()
}
