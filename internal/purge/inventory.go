package purge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/go-logr/logr"
)

// ArchiveRecord is one entry of a vault inventory.
type ArchiveRecord struct {
	ArchiveID          string `json:"ArchiveId"`
	ArchiveDescription string `json:"ArchiveDescription"`
	CreationDate       string `json:"CreationDate"`
	Size               int64  `json:"Size"`
	SHA256TreeHash     string `json:"SHA256TreeHash"`
}

// Inventory is the output of an inventory-retrieval job.
type Inventory struct {
	VaultARN      string          `json:"VaultARN"`
	InventoryDate string          `json:"InventoryDate"`
	ArchiveList   []ArchiveRecord `json:"ArchiveList"`
}

// ErrNoArchiveList is returned when the job output lacks an ArchiveList.
var ErrNoArchiveList = errors.New("inventory has no ArchiveList")

// ParseInventory decodes a JSON inventory document, keeping archive order.
func ParseInventory(r io.Reader) (*Inventory, error) {
	var doc struct {
		VaultARN      string           `json:"VaultARN"`
		InventoryDate string           `json:"InventoryDate"`
		ArchiveList   *[]ArchiveRecord `json:"ArchiveList"`
	}
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode inventory: %w", err)
	}
	if doc.ArchiveList == nil {
		return nil, ErrNoArchiveList
	}

	return &Inventory{
		VaultARN:      doc.VaultARN,
		InventoryDate: doc.InventoryDate,
		ArchiveList:   *doc.ArchiveList,
	}, nil
}

func (p *Purger) fetchInventory(ctx context.Context, log logr.Logger, vaultName, jobID string) (*Inventory, error) {
	log.Info("Inventory retrieved, parsing data...", "job", jobID)

	body, err := p.api.GetJobOutput(ctx, vaultName, jobID)
	if err != nil {
		return nil, NewError(KindFetchInventory, err)
	}
	defer body.Close()

	inventory, err := ParseInventory(body)
	if err != nil {
		return nil, NewError(KindParseInventory, err)
	}

	log.V(1).Info("Inventory parsed", "archives", len(inventory.ArchiveList), "date", inventory.InventoryDate)
	return inventory, nil
}
