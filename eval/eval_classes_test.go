/*
File    : lox-v1/eval/eval_classes_test.go
Author  : aQaTL
*/
package eval

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aQaTL/lox-v1/objects"
)

// TestEvaluator_Functions verifies declarations, calls, implicit nil
// returns, and recursion.
func TestEvaluator_Functions(t *testing.T) {
	assertOutput(t, `fun add(a, b) { return a + b; } print add(2, 3);`, "5\n")
	assertOutput(t, `fun noReturn() { } print noReturn();`, "nil\n")
	assertOutput(t, `fun early() { return 1; print "unreachable"; } print early();`, "1\n")
	assertOutput(t, `
fun fib(n) {
  if (n < 2) return n;
  return fib(n - 2) + fib(n - 1);
}
print fib(10);`, "55\n")
}

// TestEvaluator_ReturnUnwindsThroughBlocks verifies the non-local return
// signal: it crosses block and loop boundaries up to the call site.
func TestEvaluator_ReturnUnwindsThroughBlocks(t *testing.T) {
	src := `
fun find() {
  for (var i = 0; i < 10; i = i + 1) {
    if (i == 3) { return i; }
  }
  return -1;
}
print find();`
	assertOutput(t, src, "3\n")
}

// TestEvaluator_Closures verifies capture of the defining environment by
// reference: the classic counter, and sharing of one captured binding by
// two closures.
func TestEvaluator_Closures(t *testing.T) {
	src := `
fun makeCounter() { var i = 0; fun c() { i = i + 1; return i; } return c; }
var c = makeCounter();
print c(); print c(); print c();`
	assertOutput(t, src, "1\n2\n3\n")

	// Two counters do not share state
	src = `
fun makeCounter() { var i = 0; fun c() { i = i + 1; return i; } return c; }
var a = makeCounter();
var b = makeCounter();
print a(); print a(); print b();`
	assertOutput(t, src, "1\n2\n1\n")

	// Two closures over one binding observe each other's writes: the
	// capture is the mutable binding, not a snapshot of its value.
	src = `
fun makePair() {
  var n = 0;
  fun bump() { n = n + 1; }
  fun read() { return n; }
  bump();
  bump();
  print read();
}
makePair();`
	assertOutput(t, src, "2\n")
}

// TestEvaluator_ClosureCapturesDefinitionScope verifies that the captured
// environment is the one at the point of declaration, not at call time.
func TestEvaluator_ClosureCapturesDefinitionScope(t *testing.T) {
	src := `
var a = "global";
{
  fun show() { print a; }
  show();
  var a = "block";
  show();
}`
	// show captured the scope where only the global a was visible at its
	// declaration; the later block-local a must not leak into it.
	assertOutput(t, src, "global\nglobal\n")
}

// TestEvaluator_GlobalsLateBound verifies the globals asymmetry: a
// function body may reference a global defined after the function.
func TestEvaluator_GlobalsLateBound(t *testing.T) {
	src := `
fun show() { print later; }
var later = "defined afterwards";
show();`
	assertOutput(t, src, "defined afterwards\n")
}

// TestEvaluator_ClassBasics verifies instantiation, fields springing into
// existence on assignment, and method calls through this.
func TestEvaluator_ClassBasics(t *testing.T) {
	src := `
class Cake { init(f) { this.f = f; } taste() { return this.f; } }
print Cake("choc").taste();`
	assertOutput(t, src, "choc\n")

	src = `
class Bag { }
var b = Bag();
b.content = "stuff";
print b.content;`
	assertOutput(t, src, "stuff\n")
}

// TestEvaluator_FieldsShadowMethods verifies property lookup order: a
// field set on the instance wins over a class method of the same name.
func TestEvaluator_FieldsShadowMethods(t *testing.T) {
	src := `
class Thing { label() { return "method"; } }
var x = Thing();
print x.label() ;
x.label = "field";
print x.label;`
	assertOutput(t, src, "method\nfield\n")
}

// TestEvaluator_BoundMethods verifies that property lookup produces a
// bound method: this stays attached when the method travels as a value.
func TestEvaluator_BoundMethods(t *testing.T) {
	src := `
class Person {
  init(name) { this.name = name; }
  sayName() { print this.name; }
}
var jane = Person("Jane");
var method = jane.sayName;
method();`
	assertOutput(t, src, "Jane\n")
}

// TestEvaluator_InitializerSemantics verifies that calling a class runs
// init, that init returns the bound instance even on a bare return, and
// that class arity equals init arity.
func TestEvaluator_InitializerSemantics(t *testing.T) {
	assertOutput(t, `
class A { init() { this.x = 1; return; this.x = 2; } }
print A().x;`, "1\n")

	// Calling init directly re-initializes and yields the instance
	assertOutput(t, `
class A { init() { this.n = 0; } }
var a = A();
a.n = 5;
print a.init().n;`, "0\n")

	assertRuntimeError(t, `class A { init(x) { } } A();`, "Expected 1 arguments but got 0.")
	assertRuntimeError(t, `class A { } A(1);`, "Expected 0 arguments but got 1.")
}

// TestEvaluator_Inheritance verifies method inheritance through the
// superclass chain and subclass overriding.
func TestEvaluator_Inheritance(t *testing.T) {
	src := `
class A { m() { print "A"; } }
class B < A { }
B().m();`
	assertOutput(t, src, "A\n")

	src = `
class A { m() { print "A"; } }
class B < A { m() { print "B"; } }
B().m();`
	assertOutput(t, src, "B\n")

	// Inherited init constructs subclass instances
	src = `
class A { init(v) { this.v = v; } }
class B < A { }
print B(7).v;`
	assertOutput(t, src, "7\n")
}

// TestEvaluator_SuperDispatch verifies super calls, including the
// invariant that super starts at the declaring class's superclass even
// when the receiver is an instance of a deeper subclass.
func TestEvaluator_SuperDispatch(t *testing.T) {
	src := `
class A { m() { print "A"; } }
class B < A { m() { super.m(); print "B"; } }
B().m();`
	assertOutput(t, src, "A\nB\n")

	// The classic three-level test: C inherits B.test, whose super.m
	// must still start above B (printing A's m), not above C.
	src = `
class A { m() { print "A method"; } }
class B < A {
  m() { print "B method"; }
  test() { super.m(); }
}
class C < B { }
C().test();`
	assertOutput(t, src, "A method\n")
}

// TestEvaluator_SuperErrors verifies the runtime errors around
// inheritance: non-class superclass values and missing super methods.
func TestEvaluator_SuperErrors(t *testing.T) {
	assertRuntimeError(t, `var NotAClass = "so not a class"; class A < NotAClass { }`, "Superclass must be a class.")
	assertRuntimeError(t, `
class A { }
class B < A { m() { super.missing(); } }
B().m();`, "Undefined property 'missing'")
}

// TestEvaluator_PropertyErrors verifies the runtime errors for property
// access on non-instances and missing properties.
func TestEvaluator_PropertyErrors(t *testing.T) {
	assertRuntimeError(t, `print "str".length;`, "Only instances have properties")
	assertRuntimeError(t, `var x = 1; x.field = 2;`, "Only instances have fields")
	assertRuntimeError(t, `class A { } print A().missing;`, "Undefined property 'missing'")
	// Classes themselves have no properties, only their instances do
	assertRuntimeError(t, `class A { m() { } } print A.m;`, "Only instances have properties")
}

// TestEvaluator_ClassReferencesItself verifies the two-step define/assign:
// a method body may name its own class to construct new instances.
func TestEvaluator_ClassReferencesItself(t *testing.T) {
	src := `
class Node {
  init(v) { this.v = v; }
  clone() { return Node(this.v); }
}
var a = Node(3);
var b = a.clone();
print b.v;
print a == b;`
	assertOutput(t, src, "3\nfalse\n")
}

// TestEvaluator_InstanceIdentity verifies identity equality for instances
// and classes.
func TestEvaluator_InstanceIdentity(t *testing.T) {
	src := `
class A { }
var x = A();
var y = A();
var z = x;
print x == y;
print x == z;
print A == A;`
	assertOutput(t, src, "false\ntrue\ntrue\n")
}

// TestEvaluator_CyclicReferences verifies that mutually referencing
// instances evaluate cleanly (the ownership model tolerates cycles).
func TestEvaluator_CyclicReferences(t *testing.T) {
	src := `
class Node { }
var a = Node();
var b = Node();
a.next = b;
b.next = a;
print a.next.next == a;`
	assertOutput(t, src, "true\n")
}

// TestEvaluator_ValueKinds is a direct check of the runtime value model
// used across the tests above.
func TestEvaluator_ValueKinds(t *testing.T) {
	_, result := runProgram(t, `1 + 1;`)
	assert.Equal(t, objects.NumberType, result.GetType())
	assert.Equal(t, "2", result.ToString())

	_, result = runProgram(t, `"a" + "b";`)
	assert.Equal(t, objects.StringType, result.GetType())

	_, result = runProgram(t, `1 < 2;`)
	assert.Equal(t, objects.BooleanType, result.GetType())

	_, result = runProgram(t, `nil;`)
	assert.Equal(t, objects.NilType, result.GetType())
}
