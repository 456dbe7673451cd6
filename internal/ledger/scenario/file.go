package scenario

// File is the YAML layout of a scenario.
//
//	name: demo
//	keys:
//	  alice: "alice passphrase"
//	seed:
//	  - {owner: alice, value: 10}
//	epochs:
//	  - transactions:
//	      - name: pay-bob
//	        inputs:
//	          - {ref: "seed:0", signer: alice}
//	        outputs:
//	          - {to: bob, value: 10}
//
// Owners, signers and recipients are key names; a recipient may also be a hex
// encoded compressed public key. Keys not listed under keys are derived from
// their name.
type File struct {
	Name   string            `yaml:"name"`
	Keys   map[string]string `yaml:"keys"`
	Seed   []SeedOutput      `yaml:"seed"`
	Epochs []EpochSpec       `yaml:"epochs"`
}

// SeedOutput is one output of the initial pool.
type SeedOutput struct {
	Owner string `yaml:"owner"`
	Value int64  `yaml:"value"`
}

// EpochSpec is one batch, in submission order.
type EpochSpec struct {
	Transactions []TransactionSpec `yaml:"transactions"`
}

// TransactionSpec describes a transaction. Name is how later inputs refer to
// its outputs.
type TransactionSpec struct {
	Name    string       `yaml:"name"`
	Inputs  []InputSpec  `yaml:"inputs"`
	Outputs []OutputSpec `yaml:"outputs"`
}

// InputSpec spends Ref ("seed:<n>" or "<transaction>:<n>"). An empty Signer
// leaves the input unsigned.
type InputSpec struct {
	Ref    string `yaml:"ref"`
	Signer string `yaml:"signer"`
}

// OutputSpec pays Value to To.
type OutputSpec struct {
	To    string `yaml:"to"`
	Value int64  `yaml:"value"`
}
