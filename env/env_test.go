// Unless explicitly stated otherwise all files in this repository are licensed
// under the Apache License Version 2.0.
// This product includes software developed at Datadog (https://www.datadoghq.com/).
// Copyright 2026 Datadog, Inc.

package env_test

import (
	"os"

	"github.com/DataDog/chaos-usemem/env"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("LookupWorkerIndex", func() {
	AfterEach(func() {
		os.Unsetenv(env.WorkerIndex)
	})

	It("is not found in the original process", func() {
		os.Unsetenv(env.WorkerIndex)

		_, found, err := env.LookupWorkerIndex()
		Expect(err).ToNot(HaveOccurred())
		Expect(found).To(BeFalse())
	})

	It("returns the index handed by the coordinator", func() {
		entry := env.WorkerIndexEntry(3)
		Expect(entry).To(Equal("CHAOS_USEMEM_WORKER_INDEX=3"))

		os.Setenv(env.WorkerIndex, "3")

		index, found, err := env.LookupWorkerIndex()
		Expect(err).ToNot(HaveOccurred())
		Expect(found).To(BeTrue())
		Expect(index).To(Equal(3))
	})

	DescribeTable("rejects invalid values",
		func(value string) {
			os.Setenv(env.WorkerIndex, value)

			_, found, err := env.LookupWorkerIndex()
			Expect(found).To(BeTrue())
			Expect(err).To(MatchError(ContainSubstring("invalid CHAOS_USEMEM_WORKER_INDEX")))
		},
		Entry("not a number", "two"),
		Entry("the original process index", "1"),
		Entry("negative", "-4"),
	)
})
