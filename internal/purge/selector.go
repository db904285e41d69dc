package purge

import (
	"context"
	"fmt"

	"github.com/go-logr/logr"

	"github.com/imamik/glacier-purge/internal/platform/glacier"
)

// ListSentinel is the vault argument that lists vaults instead of deleting one.
const ListSentinel = "LIST"

// ListVaults logs the name and account id of every vault and returns them.
func (p *Purger) ListVaults(ctx context.Context) ([]glacier.Vault, error) {
	p.log.Info("Getting list of vaults...")

	vaults, err := p.api.ListVaults(ctx)
	if err != nil {
		return nil, NewError(KindListVaults, err)
	}

	for _, v := range vaults {
		p.log.Info("Vault", "name", v.Name, "account", v.AccountID)
	}
	return vaults, nil
}

func (p *Purger) resolveVault(ctx context.Context, log logr.Logger, name string) (*glacier.Vault, error) {
	log.Info("Getting selected vault...")

	vault, err := p.api.DescribeVault(ctx, name)
	if err != nil {
		if glacier.IsNotFound(err) {
			err = fmt.Errorf("vault %q does not exist in this account and region: %w", name, err)
		}
		return nil, NewError(KindResolveVault, err)
	}

	log.V(1).Info("Vault resolved", "arn", vault.ARN, "archives", vault.NumberOfArchives, "bytes", vault.SizeInBytes)
	return vault, nil
}
