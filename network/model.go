// SPDX-License-Identifier: MIT

package network

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Model is a network together with the initial populations it starts from,
// as described by a YAML model file:
//
//	name: decay-chain
//	species: [A, B]
//	initial: {A: 10}
//	reactions:
//	  - name: convert
//	    reactants: {A: 1}
//	    products: {B: 1}
//	    rate: 1
//
// Species missing from "initial" start at zero. Reactions without a name are
// labelled R<index>.
type Model struct {
	Name    string
	Network *Network
	Initial []int64
}

type modelFile struct {
	Name      string           `yaml:"name"`
	Species   []string         `yaml:"species"`
	Initial   map[string]int64 `yaml:"initial"`
	Reactions []reactionFile   `yaml:"reactions"`
}

type reactionFile struct {
	Name      string         `yaml:"name"`
	Reactants map[string]int `yaml:"reactants"`
	Products  map[string]int `yaml:"products"`
	Rate      float64        `yaml:"rate"`
}

// LoadModel reads and decodes the model file at path.
func LoadModel(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("network: read model: %w", err)
	}

	return DecodeModel(bytes.NewReader(data))
}

// DecodeModel decodes a YAML model and builds a validated Network from it.
// Unknown YAML fields are rejected.
//
// Errors:
//   - wrapped yaml errors for malformed documents;
//   - ErrInvalidDimensions when no species or no reactions are declared;
//   - ErrInvalidName for empty or duplicate species;
//   - ErrUnknownSpecies for references to undeclared species;
//   - ErrNegativePopulation for negative initial counts;
//   - any error of NewFromStoich.
func DecodeModel(r io.Reader) (*Model, error) {
	var mf modelFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&mf); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, networkErrorf("network: decode model", ErrInvalidDimensions)
		}
		return nil, fmt.Errorf("network: decode model: %w", err)
	}
	if len(mf.Species) == 0 || len(mf.Reactions) == 0 {
		return nil, networkErrorf("network: decode model", ErrInvalidDimensions)
	}

	index := make(map[string]int, len(mf.Species))
	for i, s := range mf.Species {
		if s == "" {
			return nil, networkErrorf("network: decode model: species", ErrInvalidName)
		}
		if _, dup := index[s]; dup {
			return nil, fmt.Errorf("network: decode model: species %q: %w", s, ErrInvalidName)
		}
		index[s] = i
	}

	ns, nr := len(mf.Species), len(mf.Reactions)
	react, err := NewStoich(ns, nr)
	if err != nil {
		return nil, err
	}
	prod, err := NewStoich(ns, nr)
	if err != nil {
		return nil, err
	}
	kDet := make([]float64, nr)
	names := make([]string, nr)
	for j, rf := range mf.Reactions {
		names[j] = rf.Name
		if names[j] == "" {
			names[j] = fmt.Sprintf("R%d", j)
		}
		kDet[j] = rf.Rate
		if err = fillColumn(react, j, rf.Reactants, index); err != nil {
			return nil, fmt.Errorf("network: decode model: reaction %q reactants: %w", names[j], err)
		}
		if err = fillColumn(prod, j, rf.Products, index); err != nil {
			return nil, fmt.Errorf("network: decode model: reaction %q products: %w", names[j], err)
		}
	}

	net, err := NewFromStoich(react, prod, kDet,
		WithSpeciesNames(mf.Species...),
		WithReactionNames(names...),
	)
	if err != nil {
		return nil, fmt.Errorf("network: decode model: %w", err)
	}

	initial := make([]int64, ns)
	for s, v := range mf.Initial {
		i, ok := index[s]
		if !ok {
			return nil, fmt.Errorf("network: decode model: initial %q: %w", s, ErrUnknownSpecies)
		}
		initial[i] = v
	}
	if err = net.ValidateState(initial); err != nil {
		return nil, fmt.Errorf("network: decode model: initial: %w", err)
	}

	return &Model{Name: mf.Name, Network: net, Initial: initial}, nil
}

func fillColumn(m *Stoich, j int, coeffs map[string]int, index map[string]int) error {
	for s, v := range coeffs {
		i, ok := index[s]
		if !ok {
			return fmt.Errorf("%q: %w", s, ErrUnknownSpecies)
		}
		m.data[i*m.r+j] = v
	}

	return nil
}
