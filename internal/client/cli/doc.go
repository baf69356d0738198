// Package cli implements the hexplay command-line client.
//
// Every command is a single gRPC call:
//
//	status <question>
//	add-user <name> <email> [age]
//	get-user <id>
//	get-user-by-token <token>
//	get-users [start_id] [page_size]
//	update-user <id> <version> [-name N] [-age A]
//	delete-user <id> <version>
//	repl
//
// repl reads the same commands line by line until exit. Results are printed
// as text or JSON according to the configured output format.
package cli
