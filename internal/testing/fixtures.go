package testing

import (
	"encoding/json"
	"fmt"
)

// TestVaultARN returns the ARN Glacier reports for a vault in the test account.
func TestVaultARN(name string) string {
	return fmt.Sprintf("arn:aws:glacier:eu-west-1:123456789012:vaults/%s", name)
}

// InventoryJSON builds an inventory-retrieval job output listing one archive
// per id, in order. Empty ids are kept as-is.
func InventoryJSON(vault string, archiveIDs ...string) []byte {
	type archive struct {
		ArchiveID          string `json:"ArchiveId"`
		ArchiveDescription string `json:"ArchiveDescription"`
		CreationDate       string `json:"CreationDate"`
		Size               int64  `json:"Size"`
		SHA256TreeHash     string `json:"SHA256TreeHash"`
	}
	doc := struct {
		VaultARN      string    `json:"VaultARN"`
		InventoryDate string    `json:"InventoryDate"`
		ArchiveList   []archive `json:"ArchiveList"`
	}{
		VaultARN:      TestVaultARN(vault),
		InventoryDate: "2026-10-01T08:00:00Z",
		ArchiveList:   make([]archive, 0, len(archiveIDs)),
	}
	for i, id := range archiveIDs {
		doc.ArchiveList = append(doc.ArchiveList, archive{
			ArchiveID:          id,
			ArchiveDescription: fmt.Sprintf("backup-%d", i),
			CreationDate:       "2019-04-12T10:11:12Z",
			Size:               int64(1024 * (i + 1)),
			SHA256TreeHash:     fmt.Sprintf("%064x", i),
		})
	}

	data, err := json.Marshal(doc)
	if err != nil {
		panic(err)
	}
	return data
}
