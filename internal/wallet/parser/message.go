package parser

import (
	"fmt"

	"google.golang.org/protobuf/encoding/protowire"
)

// Message type URLs understood by the raw block strategy.
const (
	TypeURLMsgSend       = "/cosmos.bank.v1beta1.MsgSend"
	TypeURLMsgDelegate   = "/cosmos.staking.v1beta1.MsgDelegate"
	TypeURLMsgUndelegate = "/cosmos.staking.v1beta1.MsgUndelegate"
)

// Coin is a protobuf cosmos.base.v1beta1.Coin.
type Coin struct {
	Denom  string
	Amount string
}

// Message is a decoded transaction message. For MsgSend From/To are the sender
// and recipient; for delegations From is the delegator and To the validator.
type Message struct {
	TypeURL string
	From    string
	To      string
	Coins   []Coin
}

// DecodeMessages extracts the messages of a protobuf encoded TxRaw.
// Messages with unknown type URLs are returned with only TypeURL set.
func DecodeMessages(txBytes []byte) ([]Message, error) {
	var body []byte
	err := walkBytesFields(txBytes, func(num protowire.Number, v []byte) error {
		if num == 1 {
			body = v
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("decode tx raw: %w", err)
	}

	var msgs []Message
	err = walkBytesFields(body, func(num protowire.Number, v []byte) error {
		if num != 1 {
			return nil
		}
		msg, err := decodeAny(v)
		if err != nil {
			return err
		}
		msgs = append(msgs, msg)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("decode tx body: %w", err)
	}
	return msgs, nil
}

func decodeAny(b []byte) (Message, error) {
	var (
		msg   Message
		value []byte
	)
	err := walkBytesFields(b, func(num protowire.Number, v []byte) error {
		switch num {
		case 1:
			msg.TypeURL = string(v)
		case 2:
			value = v
		}
		return nil
	})
	if err != nil {
		return Message{}, fmt.Errorf("decode any: %w", err)
	}

	switch msg.TypeURL {
	case TypeURLMsgSend, TypeURLMsgDelegate, TypeURLMsgUndelegate:
	default:
		return msg, nil
	}

	err = walkBytesFields(value, func(num protowire.Number, v []byte) error {
		switch num {
		case 1:
			msg.From = string(v)
		case 2:
			msg.To = string(v)
		case 3:
			coin, err := decodeCoin(v)
			if err != nil {
				return err
			}
			msg.Coins = append(msg.Coins, coin)
		}
		return nil
	})
	if err != nil {
		return Message{}, fmt.Errorf("decode %s: %w", msg.TypeURL, err)
	}
	return msg, nil
}

func decodeCoin(b []byte) (Coin, error) {
	var c Coin
	err := walkBytesFields(b, func(num protowire.Number, v []byte) error {
		switch num {
		case 1:
			c.Denom = string(v)
		case 2:
			c.Amount = string(v)
		}
		return nil
	})
	return c, err
}

// walkBytesFields calls fn for every length-delimited field and skips the rest.
func walkBytesFields(b []byte, fn func(protowire.Number, []byte) error) error {
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			return protowire.ParseError(n)
		}
		b = b[n:]
		if typ != protowire.BytesType {
			m := protowire.ConsumeFieldValue(num, typ, b)
			if m < 0 {
				return protowire.ParseError(m)
			}
			b = b[m:]
			continue
		}
		v, m := protowire.ConsumeBytes(b)
		if m < 0 {
			return protowire.ParseError(m)
		}
		if err := fn(num, v); err != nil {
			return err
		}
		b = b[m:]
	}
	return nil
}
