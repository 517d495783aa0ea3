package script

import "github.com/pkg/errors"

// state is the reader's push-down automaton state. Each state accepts
// a fixed set of element kinds for its children.
type state int

const (
	stateRoot state = iota
	stateExec
	stateBlock
	stateInput
	statePreset
	stateMethods
	stateExprTable
	stateExprBody
	stateToken
)

// transition is the action for one accepted element: the successor
// state for its children and, where the state calls for one, the
// builder factory. The expression machinery states carry no builder.
type transition struct {
	next state
	make func(name string) builder
}

// dispatch is the pure transition function: (state, kind) to action.
// atRoot is true when the enclosing element is the document root,
// which is the only place an expressions dictionary is legal.
func dispatch(st state, kind string, atRoot bool) (transition, error) {
	switch st {
	case stateRoot, stateExec:
		switch kind {
		case kindExpressions:
			if st == stateExec && atRoot {
				return transition{next: stateExprTable}, nil
			}
			return transition{}, errors.New("expression tables are only allowed on the document root")
		case kindCall:
			return transition{next: stateExec, make: func(string) builder { return &callBuilder{} }}, nil
		}
		return genericTransition(kind), nil

	case stateBlock:
		if kind == kindExpressions {
			return transition{}, errors.New("expression tables are only allowed on the document root")
		}
		return genericTransition(kind), nil

	case stateInput:
		switch kind {
		case kindBoolean:
			return transition{next: stateExec, make: func(string) builder { return &inputBuilder{kind: KindBooleanInput} }}, nil
		case kindText:
			return transition{next: stateExec, make: func(string) builder { return &inputBuilder{kind: KindTextInput} }}, nil
		case kindOption:
			return transition{next: stateExec, make: func(string) builder { return &optionBuilder{} }}, nil
		case kindEnum:
			return transition{next: stateInput, make: func(string) builder { return &inputBuilder{kind: KindEnumInput} }}, nil
		case kindList:
			return transition{next: stateInput, make: func(string) builder { return &inputBuilder{kind: KindListInput} }}, nil
		case kindOutput:
			return transition{next: stateBlock, make: func(string) builder { return &outputBuilder{} }}, nil
		}
		return transition{}, errors.Errorf("%q is not an input kind", kind)

	case statePreset:
		switch kind {
		case kindBoolean:
			return transition{next: statePreset, make: func(string) builder { return &presetBuilder{kind: KindBooleanPreset} }}, nil
		case kindText:
			return transition{next: statePreset, make: func(string) builder { return &presetBuilder{kind: KindTextPreset} }}, nil
		case kindEnum:
			return transition{next: statePreset, make: func(string) builder { return &presetBuilder{kind: KindEnumPreset} }}, nil
		case kindList:
			return transition{next: statePreset, make: func(string) builder { return &presetBuilder{kind: KindListPreset} }}, nil
		case kindValue:
			return transition{next: statePreset, make: func(string) builder { return &presetValueBuilder{} }}, nil
		}
		return transition{}, errors.Errorf("%q is not a preset kind", kind)

	case stateMethods:
		// The element kind is the method's name.
		return transition{next: stateExec, make: func(name string) builder { return &methodBuilder{name: name} }}, nil

	case stateExprTable:
		// The element kind is the expression's id.
		return transition{next: stateExprBody}, nil

	case stateExprBody:
		switch kind {
		case kindLiteral, kindOperator, kindVariable:
			return transition{next: stateToken}, nil
		}
		return transition{}, errors.Errorf("%q is not an expression token kind", kind)

	case stateToken:
		return transition{}, errors.New("expression tokens have no children")
	}
	return transition{}, errors.Errorf("no transition from state %d", st)
}

// genericTransition resolves a kind outside the specialized contexts:
// executable containers, the dedicated tables, the typed generic
// blocks, and the Block fallback for everything else.
func genericTransition(kind string) transition {
	switch kind {
	case kindScript:
		return transition{next: stateExec, make: func(string) builder { return &scriptBuilder{} }}
	case kindStep:
		return transition{next: stateExec, make: func(string) builder { return &stepBuilder{} }}
	case kindMethod:
		return transition{next: stateExec, make: func(string) builder { return &methodBuilder{} }}
	case kindMethods:
		return transition{next: stateMethods, make: func(string) builder { return &methodsBuilder{} }}
	case kindInputs:
		return transition{next: stateInput, make: func(string) builder { return &inputsBuilder{} }}
	case kindPresets:
		return transition{next: statePreset, make: func(string) builder { return &presetsBuilder{} }}
	case kindOutput:
		return transition{next: stateBlock, make: func(string) builder { return &outputBuilder{} }}
	case kindModel:
		return transition{next: stateBlock, make: func(string) builder { return &modelBuilder{kind: KindModel} }}
	case kindModelList:
		return transition{next: stateBlock, make: func(string) builder { return &modelBuilder{kind: KindModelList} }}
	case kindModelValue:
		return transition{next: stateBlock, make: func(string) builder { return &modelBuilder{kind: KindModelValue} }}
	default:
		return transition{next: stateBlock, make: func(name string) builder { return &blockBuilder{kindName: name} }}
	}
}
