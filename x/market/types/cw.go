package types

import (
	"encoding/json"
)

// CW721ExecuteMsg is the subset of the cw721 execute interface used for settlement.
type CW721ExecuteMsg struct {
	TransferNft *CW721TransferNft `json:"transfer_nft,omitempty"`
}

type CW721TransferNft struct {
	Recipient string `json:"recipient"`
	TokenID   string `json:"token_id"`
}

// CW721QueryMsg is the subset of the cw721 query interface used for ownership checks.
type CW721QueryMsg struct {
	OwnerOf *CW721OwnerOf `json:"owner_of,omitempty"`
}

type CW721OwnerOf struct {
	TokenID        string `json:"token_id"`
	IncludeExpired *bool  `json:"include_expired,omitempty"`
}

type CW721Approval struct {
	Spender string          `json:"spender"`
	Expires json.RawMessage `json:"expires,omitempty"`
}

type CW721OwnerOfResponse struct {
	Owner     string          `json:"owner"`
	Approvals []CW721Approval `json:"approvals"`
}

// CW20ExecuteMsg is the subset of the cw20 execute interface used for refunds and payments.
type CW20ExecuteMsg struct {
	Transfer *CW20Transfer `json:"transfer,omitempty"`
}

type CW20Transfer struct {
	Recipient string `json:"recipient"`
	Amount    string `json:"amount"`
}
