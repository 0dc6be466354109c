// Package metrics holds the prometheus collectors of walletsync components.
package metrics

const namespace = "walletsync"

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}

func orUnknown(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}
