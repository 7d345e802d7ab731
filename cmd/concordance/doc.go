// Package main hosts the concordance CLI entrypoint and command graph.
//
// The root command reads one text file and writes its concordance to a file
// or stdout. Subcommands scaffold configuration, process many files at once,
// and browse the local history of generated reports. Configuration, logging,
// and the tokenizer registry are resolved once per invocation in
// commandContext so commands stay declarative.
package main
