package purge

import (
	"context"

	"github.com/go-logr/logr"
)

// RemediationHint is logged when the vault cannot be deleted.
const RemediationHint = "We can't remove the vault now. Please wait some time and try again. " +
	"You can also remove it from the AWS console, now that all archives have been removed."

// deleteVault runs once after the archive pass. A failure is logged with
// RemediationHint and recorded in the summary.
func (p *Purger) deleteVault(ctx context.Context, log logr.Logger, vaultName string, summary *Summary) {
	log.Info("Removing vault...")

	if err := p.api.DeleteVault(ctx, vaultName); err != nil {
		failure := NewError(KindDeleteVault, err)
		log.Error(failure, "Vault removal failed", "kind", Code(err))
		log.Error(nil, RemediationHint)
		summary.VaultError = err.Error()
		p.metrics.ObserveVaultDeletion(false)
		return
	}

	summary.VaultDeleted = true
	p.metrics.ObserveVaultDeletion(true)
	log.Info("Vault removed.")
}
