// Package purge empties and deletes a Glacier vault.
//
// A run walks these steps in order: resolve the vault, find or start an
// inventory-retrieval job, poll it until it leaves InProgress, parse the
// inventory, delete every archive (one retry after a cooldown), and delete
// the vault. Failures before the deletion phase abort the run with a fatal
// [*Error]; archive and vault deletion failures are logged and recorded in
// the [Summary] without stopping the run.
package purge
