package isa_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"isagen/isa"
)

// smallDescription returns a well-formed description where 0x02 and 0xFF
// are invalid and every other opcode is "LDA imm".
func smallDescription() *isa.Description {
	desc := &isa.Description{
		InvalidOpcodes:  []string{"02", "FF"},
		AddressingModes: map[string]string{"imm": "Immediate", "impl": "Implied"},
	}
	for range isa.NumOpcodes - 2 {
		desc.Instructions = append(desc.Instructions, "LDA imm")
	}
	return desc
}

var _ = Describe("Description", func() {
	var desc *isa.Description

	BeforeEach(func() {
		desc = smallDescription()
	})

	It("should accept a well-formed description", func() {
		Expect(desc.Validate()).To(Succeed())
	})

	It("should accept the 6502 description", func() {
		desc, err := isa.Open("testdata/timed.json")
		Expect(err).NotTo(HaveOccurred())
		Expect(desc.Validate()).To(Succeed())
	})

	It("should reject too few instructions", func() {
		desc.Instructions = desc.Instructions[1:]

		err := desc.Validate()
		Expect(err).To(MatchError(isa.ErrMalformed))
		Expect(err.Error()).To(ContainSubstring("253 instructions + 2 invalid opcodes = 255, want 256"))
	})

	It("should reject too many instructions", func() {
		desc.Instructions = append(desc.Instructions, "LDA imm")

		Expect(desc.Validate()).To(MatchError(isa.ErrMalformed))
	})

	It("should reject unknown addressing modes", func() {
		desc.Instructions[10] = "LDA zpg"

		err := desc.Validate()
		Expect(err).To(MatchError(isa.ErrLookup))
		Expect(err).NotTo(MatchError(isa.ErrMalformed))
		Expect(err.Error()).To(ContainSubstring(`instructions[10] "LDA zpg": unknown addressing mode "zpg"`))
	})

	It("should reject malformed descriptors", func() {
		desc.Instructions[3] = "LDA"

		err := desc.Validate()
		Expect(err).To(MatchError(isa.ErrMalformed))
		Expect(err.Error()).To(ContainSubstring("instructions[3]"))
	})

	DescribeTable("should reject malformed invalid opcodes",
		func(opcode string) {
			desc.InvalidOpcodes[0] = opcode

			Expect(desc.Validate()).To(MatchError(isa.ErrMalformed))
		},
		Entry("lower case", "0a"),
		Entry("single digit", "2"),
		Entry("prefixed", "0x02"),
		Entry("not hex", "G0"),
	)

	It("should reject duplicate invalid opcodes", func() {
		desc.InvalidOpcodes[1] = "02"

		err := desc.Validate()
		Expect(err).To(MatchError(isa.ErrMalformed))
		Expect(err.Error()).To(ContainSubstring(`invalid_opcodes[1] "02" is a duplicate`))
	})

	Context("with timings", func() {
		BeforeEach(func() {
			desc.Cycles = make([]uint8, len(desc.Instructions))
			desc.PagePenalty = make([]bool, len(desc.Instructions))
		})

		It("should accept one timing per instruction", func() {
			Expect(desc.Validate()).To(Succeed())
		})

		It("should reject missing cycles", func() {
			desc.Cycles = desc.Cycles[1:]

			Expect(desc.Validate()).To(MatchError(isa.ErrMalformed))
		})

		It("should reject extra page penalties", func() {
			desc.PagePenalty = append(desc.PagePenalty, true)

			Expect(desc.Validate()).To(MatchError(isa.ErrMalformed))
		})
	})

	It("should report all problems at once", func() {
		desc.InvalidOpcodes[0] = "zz"
		desc.Instructions[0] = "LDA abs"
		desc.Instructions[1] = "LDA"

		err := desc.Validate()
		var verr *isa.ValidationError
		Expect(err).To(BeAssignableToTypeOf(verr))
		Expect(err.(*isa.ValidationError).Problems).To(HaveLen(3))
		Expect(err).To(MatchError(isa.ErrLookup))
		Expect(err).To(MatchError(isa.ErrMalformed))
	})
})
