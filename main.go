package main

import (
	"fmt"

	"github.com/aQaTL/lox-v1/parser"
)

// Small demo driver: parses a few snippets and prints their canonical
// parenthesized ASTs. The real interpreter binary lives in main/.
func main() {

	// binary expression with operator precedence
	src1 := `print 1 + 2 * 3;`
	fmt.Println(parser.PrintAST(parser.NewParser(src1).Parse()))

	// unary expression with double negation
	src2 := `!!true;`
	fmt.Println(parser.PrintAST(parser.NewParser(src2).Parse()))

	// parenthesised expression with mixed operators
	src3 := `4 - (1 + 2) + 2 + 3 * 4 / 2;`
	fmt.Println(parser.PrintAST(parser.NewParser(src3).Parse()))

	// for loop, shown in its desugared while form
	src4 := `for (var i = 0; i < 3; i = i + 1) print i;`
	fmt.Println(parser.PrintAST(parser.NewParser(src4).Parse()))

	// class with inheritance and super dispatch
	src5 := `
class A { m() { print "A"; } }
class B < A { m() { super.m(); print "B"; } }
B().m();`
	fmt.Println(parser.PrintAST(parser.NewParser(src5).Parse()))
}
