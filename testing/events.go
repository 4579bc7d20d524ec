package ibctesting

import (
	"bytes"
	"errors"
	"strconv"

	sdk "github.com/cosmos/cosmos-sdk/types"
	testifysuite "github.com/stretchr/testify/suite"
	abci "github.com/tendermint/tendermint/abci/types"

	"github.com/abstract-accounts/account-ibc/modules/apps/account-ibc/types"
)

// ContainsEvent returns true if an event of the given type was emitted
func ContainsEvent(events sdk.Events, eventType string) bool {
	for _, event := range events {
		if event.Type == eventType {
			return true
		}
	}

	return false
}

// ParseSequenceFromEvents parses the events emitted when an action is sent and returns the
// sequence of the last sent action.
func ParseSequenceFromEvents(events sdk.Events) (uint64, error) {
	for i := len(events) - 1; i >= 0; i-- {
		if events[i].Type != types.EventTypeActionSent {
			continue
		}

		if value, found := attributeByKey(events[i].Attributes, types.AttributeKeySequence); found {
			return strconv.ParseUint(value, 10, 64)
		}
	}

	return 0, errors.New("action sequence event attribute not found")
}

// ParseRemoteAddressFromEvents parses the events emitted when a host provisions a remote account
// and returns its address.
func ParseRemoteAddressFromEvents(events sdk.Events) (string, error) {
	for _, event := range events {
		if event.Type != types.EventTypeRemoteAccountProvisioned {
			continue
		}

		if value, found := attributeByKey(event.Attributes, types.AttributeKeyAddress); found {
			return value, nil
		}
	}

	return "", errors.New("remote account address event attribute not found")
}

// AssertEvents asserts that expected events are present in the actual events. Only the
// attributes listed on an expected event are compared.
func AssertEvents(
	suite *testifysuite.Suite,
	expected sdk.Events,
	actual sdk.Events,
) {
	foundEvents := make(map[int]bool)

	for i, expectedEvent := range expected {
		for _, actualEvent := range actual {
			if expectedEvent.Type != actualEvent.Type {
				continue
			}

			attributeMatch := true
			for _, expectedAttr := range expectedEvent.Attributes {
				attributeMatch = attributeMatch && containsAttribute(actualEvent.Attributes, expectedAttr.Key, expectedAttr.Value)
			}

			if attributeMatch {
				foundEvents[i] = true
			}
		}
	}

	for i, expectedEvent := range expected {
		suite.Require().True(foundEvents[i], "event: %s was not found in events", expectedEvent.Type)
	}
}

func containsAttribute(attrs []abci.EventAttribute, key, value []byte) bool {
	for _, attr := range attrs {
		if bytes.Equal(attr.Key, key) && bytes.Equal(attr.Value, value) {
			return true
		}
	}

	return false
}

func attributeByKey(attrs []abci.EventAttribute, key string) (string, bool) {
	for _, attr := range attrs {
		if string(attr.Key) == key {
			return string(attr.Value), true
		}
	}

	return "", false
}
