// Package glacier provides a client for Amazon S3 Glacier vaults.
//
// It covers what is needed to empty and delete a vault: listing and
// describing vaults, listing, starting and polling inventory-retrieval jobs,
// downloading job output, and deleting archives and vaults. SDK shapes are
// translated into the small [Vault] and [Job] types.
package glacier
