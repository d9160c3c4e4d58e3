/*
File    : lox-v1/objects/class.go
Author  : aQaTL
*/
package objects

import "fmt"

// FunctionInterface is the view of a callable method this package needs.
// The concrete user-function type lives in the function package, which
// imports objects; using an interface here breaks the import cycle.
type FunctionInterface interface {
	GetName() string
	GetType() LoxType
	Arity() int
	ToString() string
	ToObject() string
}

// LoxClass represents a class object: a name, an optional superclass, and
// a method table. Classes are first-class values; calling one constructs
// an instance.
type LoxClass struct {
	Name    string                       // Name of the class
	Super   *LoxClass                    // Superclass, or nil
	Methods map[string]FunctionInterface // Method table (name to function)
}

// FindMethod retrieves a method by name, walking the superclass chain when
// the class itself does not define it. A subclass method shadows a
// superclass method of the same name.
//
// Returns:
//   - FunctionInterface: The method (if found)
//   - bool: true when a method was found on this class or an ancestor
func (c *LoxClass) FindMethod(name string) (FunctionInterface, bool) {
	if method, found := c.Methods[name]; found {
		return method, true
	}
	if c.Super != nil {
		return c.Super.FindMethod(name)
	}
	return nil, false
}

// GetConstructor returns the class's initializer, which is the "init"
// method if one exists anywhere on the inheritance chain.
func (c *LoxClass) GetConstructor() (FunctionInterface, bool) {
	return c.FindMethod("init")
}

// Arity returns the number of arguments a call of this class takes: the
// initializer's arity, or zero when the class has no initializer.
func (c *LoxClass) Arity() int {
	if initializer, found := c.GetConstructor(); found {
		return initializer.Arity()
	}
	return 0
}

// GetType returns the type of the class object
func (c *LoxClass) GetType() LoxType {
	return ClassType
}

// ToString returns the class's display form: its bare name.
func (c *LoxClass) ToString() string {
	return c.Name
}

// ToObject returns the detailed representation including the method names.
func (c *LoxClass) ToObject() string {
	methodStr := ""
	for name := range c.Methods {
		methodStr += fmt.Sprintf("\n  %s", name)
	}
	return fmt.Sprintf("<class(%s) {%s}>", c.Name, methodStr)
}

// LoxInstance represents an instance of a class, holding its field values
// and a reference to the class that constructed it. Fields come into
// existence on first assignment; there are no declarations.
type LoxInstance struct {
	Class  *LoxClass            // The constructing class
	Fields map[string]LoxObject // Field values by name
}

// NewInstance creates a fresh instance of the given class with no fields.
func NewInstance(class *LoxClass) *LoxInstance {
	return &LoxInstance{
		Class:  class,
		Fields: make(map[string]LoxObject),
	}
}

// GetField reads a field by name. Method lookup is not handled here: the
// evaluator consults the class's method table when no field matches, since
// binding a method needs the evaluator's scope machinery.
func (i *LoxInstance) GetField(name string) (LoxObject, bool) {
	field, found := i.Fields[name]
	return field, found
}

// SetField creates or updates a field.
func (i *LoxInstance) SetField(name string, value LoxObject) {
	i.Fields[name] = value
}

// GetType returns the type of the instance object
func (i *LoxInstance) GetType() LoxType {
	return InstanceType
}

// ToString returns the instance's display form: "ClassName instance".
func (i *LoxInstance) ToString() string {
	return i.Class.Name + " instance"
}

// ToObject returns a detailed representation including type info
func (i *LoxInstance) ToObject() string {
	return fmt.Sprintf("<instance(%s)>", i.Class.Name)
}
