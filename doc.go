// Package jot wraps a JSON parse tree in a typed, value-semantics
// object with construction helpers, navigation, typed extraction and
// composition. Parsing and printing are delegated to json-iterator;
// jot adds the object model on top.
//
// # Usage
//
//	obj, err := jot.ParseString(`{"intval": 1234, "elems": [1.5, 2.5]}`)
//	iv, err := jot.GetAs[int](obj, "intval")
//	elems, err := obj.Get("elems")
//	fs, err := jot.AsArray[float64](elems)
//
//	// construct
//	obj := jot.New()
//	obj.Set("intval", 1234)
//	obj.Set("arrval", []any{1, 2, 3, 4})
//	obj.Set("nullval", jot.Null())
//	fmt.Println(obj)
//
// Objects are not safe for concurrent use: navigation returns views
// sharing the underlying tree, and composition mutates it without
// locking.
package jot
