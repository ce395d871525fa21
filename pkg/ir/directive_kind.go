// Code generated by hand from the canonical directive-name table; see DESIGN.md.
// DirectiveKind enumerates every directive name this system recognizes, across
// both OpenMP and OpenACC; DirectiveOther is the escape for unrecognized names.
package ir

// DirectiveKind is the sum-typed tag for a recognized directive name.
type DirectiveKind int32

const (
	DirectiveAllocate DirectiveKind = iota
	DirectiveAllocators
	DirectiveAssume
	DirectiveEndAssume
	DirectiveAssumes
	DirectiveAtomic
	DirectiveAtomicCapture
	DirectiveAtomicCompareCapture
	DirectiveAtomicRead
	DirectiveAtomicUpdate
	DirectiveAtomicWrite
	DirectiveBarrier
	DirectiveBeginAssumes
	DirectiveBeginDeclareTarget
	DirectiveBeginDeclareVariant
	DirectiveCancel
	DirectiveCancellationPoint
	DirectiveCritical
	DirectiveDeclareInduction
	DirectiveDeclareMapper
	DirectiveDeclareReduction
	DirectiveDeclareSimd
	DirectiveDeclareTarget
	DirectiveDeclareVariant
	DirectiveDepobj
	DirectiveDispatch
	DirectiveDistribute
	DirectiveDistributeParallelFor
	DirectiveDistributeParallelForSimd
	DirectiveDistributeParallelLoop
	DirectiveDistributeParallelLoopSimd
	DirectiveDistributeSimd
	DirectiveDistributeParallelDo
	DirectiveDistributeParallelDoSimd
	DirectiveDo
	DirectiveDoSimd
	DirectiveEndAssumes
	DirectiveEndDeclareTarget
	DirectiveEndDeclareVariant
	DirectiveError
	DirectiveFlush
	DirectiveFuse
	DirectiveGroupprivate
	DirectiveFor
	DirectiveForSimd
	DirectiveInterchange
	DirectiveInterop
	DirectiveLoop
	DirectiveReverse
	DirectiveMasked
	DirectiveMaskedTaskloop
	DirectiveMaskedTaskloopSimd
	DirectiveParallelMaskedTaskloop
	DirectiveParallelMaskedTaskloopSimd
	DirectiveMaster
	DirectiveMasterTaskloop
	DirectiveMasterTaskloopSimd
	DirectiveMetadirective
	DirectiveBeginMetadirective
	DirectiveNothing
	DirectiveOrdered
	DirectiveParallel
	DirectiveParallelDo
	DirectiveParallelDoSimd
	DirectiveParallelFor
	DirectiveParallelForSimd
	DirectiveParallelLoop
	DirectiveParallelWorkshare
	DirectiveParallelLoopSimd
	DirectiveParallelMasked
	DirectiveParallelMaster
	DirectiveParallelMasterTaskloop
	DirectiveParallelMasterTaskloopSimd
	DirectiveParallelSections
	DirectiveParallelSingle
	DirectiveRequires
	DirectiveScope
	DirectiveScan
	DirectiveSection
	DirectiveSections
	DirectiveSimd
	DirectiveSingle
	DirectiveSplit
	DirectiveStripe
	DirectiveTarget
	DirectiveTargetData
	DirectiveTargetDataComposite
	DirectiveTargetEnterData
	DirectiveTargetExitData
	DirectiveEndTarget
	DirectiveEndTargetData
	DirectiveEndTargetEnterData
	DirectiveEndTargetExitData
	DirectiveEndTargetUpdate
	DirectiveTargetLoop
	DirectiveTargetLoopSimd
	DirectiveTargetParallel
	DirectiveTargetParallelDo
	DirectiveTargetParallelDoSimd
	DirectiveTargetParallelFor
	DirectiveTargetParallelForSimd
	DirectiveTargetParallelLoop
	DirectiveTargetParallelLoopSimd
	DirectiveTargetSimd
	DirectiveTargetTeams
	DirectiveTargetTeamsDistribute
	DirectiveTargetTeamsDistributeParallelDo
	DirectiveTargetTeamsDistributeParallelDoSimd
	DirectiveTargetTeamsDistributeParallelFor
	DirectiveTargetTeamsDistributeParallelForSimd
	DirectiveTargetTeamsDistributeParallelLoop
	DirectiveTargetTeamsDistributeParallelLoopSimd
	DirectiveTargetTeamsDistributeSimd
	DirectiveTargetTeamsLoop
	DirectiveTargetTeamsLoopSimd
	DirectiveTargetUpdate
	DirectiveKernels
	DirectiveKernelsLoop
	DirectiveData
	DirectiveEnterData
	DirectiveExitData
	DirectiveHostData
	DirectiveDeclare
	DirectiveWait
	DirectiveEnd
	DirectiveEndParallel
	DirectiveEndDo
	DirectiveEndSimd
	DirectiveEndSections
	DirectiveEndSingle
	DirectiveEndWorkshare
	DirectiveEndOrdered
	DirectiveEndLoop
	DirectiveEndDistribute
	DirectiveEndTeams
	DirectiveEndTaskloop
	DirectiveEndTask
	DirectiveEndTaskgroup
	DirectiveEndMaster
	DirectiveEndMasked
	DirectiveEndCritical
	DirectiveEndAtomic
	DirectiveEndParallelDo
	DirectiveEndParallelFor
	DirectiveEndParallelSections
	DirectiveEndParallelWorkshare
	DirectiveEndParallelMaster
	DirectiveEndDoSimd
	DirectiveEndForSimd
	DirectiveEndParallelDoSimd
	DirectiveEndParallelForSimd
	DirectiveEndDistributeSimd
	DirectiveEndDistributeParallelDo
	DirectiveEndDistributeParallelFor
	DirectiveEndDistributeParallelDoSimd
	DirectiveEndDistributeParallelForSimd
	DirectiveEndTargetParallel
	DirectiveEndTargetParallelDo
	DirectiveEndTargetParallelFor
	DirectiveEndTargetParallelDoSimd
	DirectiveEndTargetParallelForSimd
	DirectiveEndTargetSimd
	DirectiveEndTargetTeams
	DirectiveEndTargetTeamsDistribute
	DirectiveEndTargetTeamsDistributeParallelDo
	DirectiveEndTargetTeamsDistributeParallelFor
	DirectiveEndTargetTeamsDistributeParallelDoSimd
	DirectiveEndTargetTeamsDistributeParallelForSimd
	DirectiveEndTargetTeamsDistributeSimd
	DirectiveEndTargetTeamsLoop
	DirectiveEndTeamsDistribute
	DirectiveEndTeamsDistributeParallelDo
	DirectiveEndTeamsDistributeParallelFor
	DirectiveEndTeamsDistributeParallelDoSimd
	DirectiveEndTeamsDistributeParallelForSimd
	DirectiveEndTeamsDistributeSimd
	DirectiveEndTeamsLoop
	DirectiveEndTaskloopSimd
	DirectiveEndMasterTaskloop
	DirectiveEndMasterTaskloopSimd
	DirectiveEndMaskedTaskloop
	DirectiveEndMaskedTaskloopSimd
	DirectiveEndParallelMasterTaskloop
	DirectiveEndParallelMasterTaskloopSimd
	DirectiveEndParallelMasked
	DirectiveEndParallelMaskedTaskloop
	DirectiveEndParallelMaskedTaskloopSimd
	DirectiveEndTargetParallelLoop
	DirectiveEndParallelLoop
	DirectiveEndTargetLoop
	DirectiveEndSection
	DirectiveEndScope
	DirectiveEndUnroll
	DirectiveEndTile
	DirectiveUpdate
	DirectiveSerial
	DirectiveSerialLoop
	DirectiveRoutine
	DirectiveSet
	DirectiveInit
	DirectiveShutdown
	DirectiveCache
	DirectiveTask
	DirectiveTaskIteration
	DirectiveTaskgroup
	DirectiveTaskgraph
	DirectiveTaskloop
	DirectiveTaskloopSimd
	DirectiveTaskwait
	DirectiveTaskyield
	DirectiveTeams
	DirectiveTeamsDistribute
	DirectiveTeamsDistributeParallelDo
	DirectiveTeamsDistributeParallelDoSimd
	DirectiveTeamsDistributeParallelFor
	DirectiveTeamsDistributeParallelForSimd
	DirectiveTeamsDistributeParallelLoop
	DirectiveTeamsDistributeParallelLoopSimd
	DirectiveTeamsDistributeSimd
	DirectiveTeamsLoop
	DirectiveTeamsLoopSimd
	DirectiveThreadprivate
	DirectiveTile
	DirectiveUnroll
	DirectiveWorkdistribute
	DirectiveWorkshare
	DirectiveOther
)

// directiveCanonicalNames holds the canonical textual form for every
// DirectiveKind except DirectiveOther, indexed by the constant's value.
var directiveCanonicalNames = [...]string{
	DirectiveAllocate: "allocate",
	DirectiveAllocators: "allocators",
	DirectiveAssume: "assume",
	DirectiveEndAssume: "end assume",
	DirectiveAssumes: "assumes",
	DirectiveAtomic: "atomic",
	DirectiveAtomicCapture: "atomic capture",
	DirectiveAtomicCompareCapture: "atomic compare capture",
	DirectiveAtomicRead: "atomic read",
	DirectiveAtomicUpdate: "atomic update",
	DirectiveAtomicWrite: "atomic write",
	DirectiveBarrier: "barrier",
	DirectiveBeginAssumes: "begin assumes",
	DirectiveBeginDeclareTarget: "begin declare target",
	DirectiveBeginDeclareVariant: "begin declare variant",
	DirectiveCancel: "cancel",
	DirectiveCancellationPoint: "cancellation point",
	DirectiveCritical: "critical",
	DirectiveDeclareInduction: "declare induction",
	DirectiveDeclareMapper: "declare mapper",
	DirectiveDeclareReduction: "declare reduction",
	DirectiveDeclareSimd: "declare simd",
	DirectiveDeclareTarget: "declare target",
	DirectiveDeclareVariant: "declare variant",
	DirectiveDepobj: "depobj",
	DirectiveDispatch: "dispatch",
	DirectiveDistribute: "distribute",
	DirectiveDistributeParallelFor: "distribute parallel for",
	DirectiveDistributeParallelForSimd: "distribute parallel for simd",
	DirectiveDistributeParallelLoop: "distribute parallel loop",
	DirectiveDistributeParallelLoopSimd: "distribute parallel loop simd",
	DirectiveDistributeSimd: "distribute simd",
	DirectiveDistributeParallelDo: "distribute parallel do",
	DirectiveDistributeParallelDoSimd: "distribute parallel do simd",
	DirectiveDo: "do",
	DirectiveDoSimd: "do simd",
	DirectiveEndAssumes: "end assumes",
	DirectiveEndDeclareTarget: "end declare target",
	DirectiveEndDeclareVariant: "end declare variant",
	DirectiveError: "error",
	DirectiveFlush: "flush",
	DirectiveFuse: "fuse",
	DirectiveGroupprivate: "groupprivate",
	DirectiveFor: "for",
	DirectiveForSimd: "for simd",
	DirectiveInterchange: "interchange",
	DirectiveInterop: "interop",
	DirectiveLoop: "loop",
	DirectiveReverse: "reverse",
	DirectiveMasked: "masked",
	DirectiveMaskedTaskloop: "masked taskloop",
	DirectiveMaskedTaskloopSimd: "masked taskloop simd",
	DirectiveParallelMaskedTaskloop: "parallel masked taskloop",
	DirectiveParallelMaskedTaskloopSimd: "parallel masked taskloop simd",
	DirectiveMaster: "master",
	DirectiveMasterTaskloop: "master taskloop",
	DirectiveMasterTaskloopSimd: "master taskloop simd",
	DirectiveMetadirective: "metadirective",
	DirectiveBeginMetadirective: "begin metadirective",
	DirectiveNothing: "nothing",
	DirectiveOrdered: "ordered",
	DirectiveParallel: "parallel",
	DirectiveParallelDo: "parallel do",
	DirectiveParallelDoSimd: "parallel do simd",
	DirectiveParallelFor: "parallel for",
	DirectiveParallelForSimd: "parallel for simd",
	DirectiveParallelLoop: "parallel loop",
	DirectiveParallelWorkshare: "parallel workshare",
	DirectiveParallelLoopSimd: "parallel loop simd",
	DirectiveParallelMasked: "parallel masked",
	DirectiveParallelMaster: "parallel master",
	DirectiveParallelMasterTaskloop: "parallel master taskloop",
	DirectiveParallelMasterTaskloopSimd: "parallel master taskloop simd",
	DirectiveParallelSections: "parallel sections",
	DirectiveParallelSingle: "parallel single",
	DirectiveRequires: "requires",
	DirectiveScope: "scope",
	DirectiveScan: "scan",
	DirectiveSection: "section",
	DirectiveSections: "sections",
	DirectiveSimd: "simd",
	DirectiveSingle: "single",
	DirectiveSplit: "split",
	DirectiveStripe: "stripe",
	DirectiveTarget: "target",
	DirectiveTargetData: "target data",
	DirectiveTargetDataComposite: "target data composite",
	DirectiveTargetEnterData: "target enter data",
	DirectiveTargetExitData: "target exit data",
	DirectiveEndTarget: "end target",
	DirectiveEndTargetData: "end target data",
	DirectiveEndTargetEnterData: "end target enter data",
	DirectiveEndTargetExitData: "end target exit data",
	DirectiveEndTargetUpdate: "end target update",
	DirectiveTargetLoop: "target loop",
	DirectiveTargetLoopSimd: "target loop simd",
	DirectiveTargetParallel: "target parallel",
	DirectiveTargetParallelDo: "target parallel do",
	DirectiveTargetParallelDoSimd: "target parallel do simd",
	DirectiveTargetParallelFor: "target parallel for",
	DirectiveTargetParallelForSimd: "target parallel for simd",
	DirectiveTargetParallelLoop: "target parallel loop",
	DirectiveTargetParallelLoopSimd: "target parallel loop simd",
	DirectiveTargetSimd: "target simd",
	DirectiveTargetTeams: "target teams",
	DirectiveTargetTeamsDistribute: "target teams distribute",
	DirectiveTargetTeamsDistributeParallelDo: "target teams distribute parallel do",
	DirectiveTargetTeamsDistributeParallelDoSimd: "target teams distribute parallel do simd",
	DirectiveTargetTeamsDistributeParallelFor: "target teams distribute parallel for",
	DirectiveTargetTeamsDistributeParallelForSimd: "target teams distribute parallel for simd",
	DirectiveTargetTeamsDistributeParallelLoop: "target teams distribute parallel loop",
	DirectiveTargetTeamsDistributeParallelLoopSimd: "target teams distribute parallel loop simd",
	DirectiveTargetTeamsDistributeSimd: "target teams distribute simd",
	DirectiveTargetTeamsLoop: "target teams loop",
	DirectiveTargetTeamsLoopSimd: "target teams loop simd",
	DirectiveTargetUpdate: "target update",
	DirectiveKernels: "kernels",
	DirectiveKernelsLoop: "kernels loop",
	DirectiveData: "data",
	DirectiveEnterData: "enter data",
	DirectiveExitData: "exit data",
	DirectiveHostData: "host_data",
	DirectiveDeclare: "declare",
	DirectiveWait: "wait",
	DirectiveEnd: "end",
	DirectiveEndParallel: "end parallel",
	DirectiveEndDo: "end do",
	DirectiveEndSimd: "end simd",
	DirectiveEndSections: "end sections",
	DirectiveEndSingle: "end single",
	DirectiveEndWorkshare: "end workshare",
	DirectiveEndOrdered: "end ordered",
	DirectiveEndLoop: "end loop",
	DirectiveEndDistribute: "end distribute",
	DirectiveEndTeams: "end teams",
	DirectiveEndTaskloop: "end taskloop",
	DirectiveEndTask: "end task",
	DirectiveEndTaskgroup: "end taskgroup",
	DirectiveEndMaster: "end master",
	DirectiveEndMasked: "end masked",
	DirectiveEndCritical: "end critical",
	DirectiveEndAtomic: "end atomic",
	DirectiveEndParallelDo: "end parallel do",
	DirectiveEndParallelFor: "end parallel for",
	DirectiveEndParallelSections: "end parallel sections",
	DirectiveEndParallelWorkshare: "end parallel workshare",
	DirectiveEndParallelMaster: "end parallel master",
	DirectiveEndDoSimd: "end do simd",
	DirectiveEndForSimd: "end for simd",
	DirectiveEndParallelDoSimd: "end parallel do simd",
	DirectiveEndParallelForSimd: "end parallel for simd",
	DirectiveEndDistributeSimd: "end distribute simd",
	DirectiveEndDistributeParallelDo: "end distribute parallel do",
	DirectiveEndDistributeParallelFor: "end distribute parallel for",
	DirectiveEndDistributeParallelDoSimd: "end distribute parallel do simd",
	DirectiveEndDistributeParallelForSimd: "end distribute parallel for simd",
	DirectiveEndTargetParallel: "end target parallel",
	DirectiveEndTargetParallelDo: "end target parallel do",
	DirectiveEndTargetParallelFor: "end target parallel for",
	DirectiveEndTargetParallelDoSimd: "end target parallel do simd",
	DirectiveEndTargetParallelForSimd: "end target parallel for simd",
	DirectiveEndTargetSimd: "end target simd",
	DirectiveEndTargetTeams: "end target teams",
	DirectiveEndTargetTeamsDistribute: "end target teams distribute",
	DirectiveEndTargetTeamsDistributeParallelDo: "end target teams distribute parallel do",
	DirectiveEndTargetTeamsDistributeParallelFor: "end target teams distribute parallel for",
	DirectiveEndTargetTeamsDistributeParallelDoSimd: "end target teams distribute parallel do simd",
	DirectiveEndTargetTeamsDistributeParallelForSimd: "end target teams distribute parallel for simd",
	DirectiveEndTargetTeamsDistributeSimd: "end target teams distribute simd",
	DirectiveEndTargetTeamsLoop: "end target teams loop",
	DirectiveEndTeamsDistribute: "end teams distribute",
	DirectiveEndTeamsDistributeParallelDo: "end teams distribute parallel do",
	DirectiveEndTeamsDistributeParallelFor: "end teams distribute parallel for",
	DirectiveEndTeamsDistributeParallelDoSimd: "end teams distribute parallel do simd",
	DirectiveEndTeamsDistributeParallelForSimd: "end teams distribute parallel for simd",
	DirectiveEndTeamsDistributeSimd: "end teams distribute simd",
	DirectiveEndTeamsLoop: "end teams loop",
	DirectiveEndTaskloopSimd: "end taskloop simd",
	DirectiveEndMasterTaskloop: "end master taskloop",
	DirectiveEndMasterTaskloopSimd: "end master taskloop simd",
	DirectiveEndMaskedTaskloop: "end masked taskloop",
	DirectiveEndMaskedTaskloopSimd: "end masked taskloop simd",
	DirectiveEndParallelMasterTaskloop: "end parallel master taskloop",
	DirectiveEndParallelMasterTaskloopSimd: "end parallel master taskloop simd",
	DirectiveEndParallelMasked: "end parallel masked",
	DirectiveEndParallelMaskedTaskloop: "end parallel masked taskloop",
	DirectiveEndParallelMaskedTaskloopSimd: "end parallel masked taskloop simd",
	DirectiveEndTargetParallelLoop: "end target parallel loop",
	DirectiveEndParallelLoop: "end parallel loop",
	DirectiveEndTargetLoop: "end target loop",
	DirectiveEndSection: "end section",
	DirectiveEndScope: "end scope",
	DirectiveEndUnroll: "end unroll",
	DirectiveEndTile: "end tile",
	DirectiveUpdate: "update",
	DirectiveSerial: "serial",
	DirectiveSerialLoop: "serial loop",
	DirectiveRoutine: "routine",
	DirectiveSet: "set",
	DirectiveInit: "init",
	DirectiveShutdown: "shutdown",
	DirectiveCache: "cache",
	DirectiveTask: "task",
	DirectiveTaskIteration: "task iteration",
	DirectiveTaskgroup: "taskgroup",
	DirectiveTaskgraph: "taskgraph",
	DirectiveTaskloop: "taskloop",
	DirectiveTaskloopSimd: "taskloop simd",
	DirectiveTaskwait: "taskwait",
	DirectiveTaskyield: "taskyield",
	DirectiveTeams: "teams",
	DirectiveTeamsDistribute: "teams distribute",
	DirectiveTeamsDistributeParallelDo: "teams distribute parallel do",
	DirectiveTeamsDistributeParallelDoSimd: "teams distribute parallel do simd",
	DirectiveTeamsDistributeParallelFor: "teams distribute parallel for",
	DirectiveTeamsDistributeParallelForSimd: "teams distribute parallel for simd",
	DirectiveTeamsDistributeParallelLoop: "teams distribute parallel loop",
	DirectiveTeamsDistributeParallelLoopSimd: "teams distribute parallel loop simd",
	DirectiveTeamsDistributeSimd: "teams distribute simd",
	DirectiveTeamsLoop: "teams loop",
	DirectiveTeamsLoopSimd: "teams loop simd",
	DirectiveThreadprivate: "threadprivate",
	DirectiveTile: "tile",
	DirectiveUnroll: "unroll",
	DirectiveWorkdistribute: "workdistribute",
	DirectiveWorkshare: "workshare",
}

// directiveKindByName is built once at init from directiveCanonicalNames and
// used by LookupDirectiveKind.
var directiveKindByName = func() map[string]DirectiveKind {
	m := make(map[string]DirectiveKind, len(directiveCanonicalNames))
	for k, name := range directiveCanonicalNames {
		m[name] = DirectiveKind(k)
	}
	return m
}()

// String returns the canonical textual form of k, or "<other>" for
// DirectiveOther (whose actual text lives on the owning DirectiveIR/name).
func (k DirectiveKind) String() string {
	if int(k) >= 0 && int(k) < len(directiveCanonicalNames) {
		return directiveCanonicalNames[k]
	}
	return "<other>"
}

// LookupDirectiveKind maps a canonical directive name to its DirectiveKind.
func LookupDirectiveKind(canonicalName string) (DirectiveKind, bool) {
	k, ok := directiveKindByName[canonicalName]
	return k, ok
}

// AllDirectiveKinds returns every recognized DirectiveKind in declaration
// order, for property-test enumeration.
func AllDirectiveKinds() []DirectiveKind {
	out := make([]DirectiveKind, len(directiveCanonicalNames))
	for i := range out {
		out[i] = DirectiveKind(i)
	}
	return out
}
