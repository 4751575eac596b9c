package player

import (
	"fmt"
	"strings"
)

// Kind selects a targeting strategy.
type Kind int

const (
	Random        Kind = iota // 0
	HuntTarget                // 1
	HuntTargetMax             // 2
)

var kindNames = map[Kind]string{
	Random:        "random",
	HuntTarget:    "hunt-target",
	HuntTargetMax: "hunt-target-max",
}

// Also accept the class names used by earlier versions of the simulator.
var kindAliases = map[string]Kind{
	"randomplayer":         Random,
	"hunttargetplayer":     HuntTarget,
	"hunttargetplayermore": HuntTargetMax,
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// Kinds lists every strategy in declaration order.
func Kinds() []Kind {
	return []Kind{Random, HuntTarget, HuntTargetMax}
}

func ParseKind(s string) (Kind, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for kind, name := range kindNames {
		if key == name {
			return kind, nil
		}
	}
	if kind, ok := kindAliases[key]; ok {
		return kind, nil
	}
	return 0, fmt.Errorf("unknown strategy %q", s)
}

func (k Kind) MarshalText() ([]byte, error) {
	if _, ok := kindNames[k]; !ok {
		return nil, fmt.Errorf("unknown strategy %d", int(k))
	}
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	kind, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = kind
	return nil
}

// New builds a fresh player of the given kind.
func New(kind Kind, name string, options ...Option) (Player, error) {
	switch kind {
	case Random:
		return NewRandomPlayer(name, options...), nil
	case HuntTarget:
		return NewHuntTargetPlayer(name, options...), nil
	case HuntTargetMax:
		return NewHuntTargetMaxPlayer(name, options...), nil
	default:
		return nil, fmt.Errorf("unknown strategy %d", int(kind))
	}
}
