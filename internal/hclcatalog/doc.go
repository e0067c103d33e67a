// Package hclcatalog reads and writes option catalogs written in HCL.
//
// A catalog file is a flat list of blocks:
//
//	group "modes_Group" {
//	  name = "<mode options>"
//	}
//
//	option "emit_module" {
//	  kind     = "flag"
//	  prefixes = ["-", "--"]
//	  spelling = "emit-module"
//	  group    = "modes_Group"
//	  flags    = ["frontend", "noInteractive"]
//	  help     = "Emit an importable module"
//	}
//
//	context "indexing" {
//	  predicate = "!noDriver && argumentIsPath"
//	}
//
// Group and option blocks share one ordered sequence, which is the catalog
// order every emitter follows.
package hclcatalog
