// Package routetable loads route tables from YAML or TOML files and builds
// populated trie routers from them.
//
// A table lists patterns and the values to register them with:
//
//	max_captures: 20
//	routes:
//	  - pattern: /
//	    value: index page
//	  - pattern: /:product/p
//	    value: product page
//
// The same table in TOML:
//
//	max_captures = 20
//
//	[[routes]]
//	pattern = "/"
//	value = "index page"
//
//	[[routes]]
//	pattern = "/:product/p"
//	value = "product page"
//
// Unknown keys are rejected. Validate reports every problem at once,
// including patterns that compile to the same path.
package routetable
