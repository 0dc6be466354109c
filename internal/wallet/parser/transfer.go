package parser

import "github.com/goodnatureofminers/blockinsight7000-wallet/internal/wallet/chain"

const transferEventType = "transfer"

// Transfer is a normalized bank transfer extracted from events.
type Transfer struct {
	// EventIndex is the position of the source event in its event list.
	EventIndex int
	Sender     string
	Recipient  string
	// Amount is the raw coin list, e.g. "5000000ulmn".
	Amount string
}

// Transfers decodes every transfer event. Older nodes merge several transfers
// into one event with repeated recipient/sender/amount keys; a repeated key
// starts a new transfer.
func (p *Parser) Transfers(events []chain.Event) []Transfer {
	var out []Transfer
	for i, ev := range events {
		if DecodeValue(ev.Type, looksLikeKey) != transferEventType {
			continue
		}
		cur := Transfer{EventIndex: i}
		seen := map[string]bool{}
		flush := func() {
			if cur.Recipient != "" || cur.Sender != "" || cur.Amount != "" {
				out = append(out, cur)
			}
			cur = Transfer{EventIndex: i}
			seen = map[string]bool{}
		}
		for _, raw := range ev.Attributes {
			attr := p.DecodeAttribute(raw)
			switch attr.Key {
			case "recipient", "sender", "amount":
			default:
				continue
			}
			if seen[attr.Key] {
				flush()
			}
			seen[attr.Key] = true
			switch attr.Key {
			case "recipient":
				cur.Recipient = attr.Value
			case "sender":
				cur.Sender = attr.Value
			case "amount":
				cur.Amount = attr.Value
			}
		}
		flush()
	}
	return out
}

// TransferTo returns the first transfer to address carrying a native amount,
// with the amount converted to display units.
func (p *Parser) TransferTo(events []chain.Event, address string) (Transfer, string, bool) {
	for _, t := range p.Transfers(events) {
		if t.Recipient != address {
			continue
		}
		amount, ok := p.ParseAmount(t.Amount)
		if !ok {
			continue
		}
		return t, amount, true
	}
	return Transfer{}, "", false
}
