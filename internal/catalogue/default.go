package catalogue

import "flakerun/internal/domain"

// Repeat-count tiers of the built-in catalogue
const (
	// SlowRepeat is used for cases that take long to run
	SlowRepeat = 200
	// FastRepeat is used for cheap cases, more repetitions per unit of time
	FastRepeat = 2000
	// SingleRepeat is for cases that set up process-wide resources and cannot run twice in one process
	SingleRepeat = 1
)

var slowCases = []string{
	"testDataAcquisition.testPushDataAcquiredVFloat",
	"testDataAcquisition.testPushDataAcquiredVFloatInit",
	"testDataAcquisition.testPushDataAcquiredVDBL",
	"testDataAcquisition.testPushDataAcquiredVDBLInit",
	"testDataAcquisition.testPushDataAcquiredVI32",
	"testDataAcquisition.testPushDataAcquiredVI32Init",
	"testDataAcquisition.testPushDataAcquiredVI64",
	"testDataAcquisition.testPushDataAcquiredVI64Init",
	"testDataAcquisition.testPushDataAcquiredVI8",
	"testDataAcquisition.testPushDataAcquiredVI8Init",
	"testDataAcquisition.testPushDataAcquiredVUI8Init",
	"testDataAcquisition.testPushDataAcquiredVUI8",
	"testDataAcquisition.testPushDataAcquiredFloatInit",
	"testDataAcquisition.testPushDataAcquiredFloat",
	"testDataAcquisition.testPushDataAcquiredDBLInit",
	"testDataAcquisition.testPushDataAcquiredDBL",
	"testDataAcquisition.testPushDataAcquiredI32Init",
	"testDataAcquisition.testPushDataAcquiredI32",
	"testDataAcquisition.testPushDataAcquiredI64",
	"testDataAcquisition.testPushDataAcquiredI64Init",
	"testDataAcquisition.testDecimationInit",
	"testDataAcquisition.testDecimation",
	"testDataAcquisition.testDMAParametersInit",
	"testDataAcquisition.testDMAParameters",
	"testDeviceTimestamping.SetGetInitializationTest",
}

var fastCases = []string{
	"testDataAcquisition.testStateMachine",
	"testDeviceAllocation.testAllocationMissingDevice",
	"testDeviceAllocation.testDoubleAllocation",
	"testDeviceAllocation.testInitDeinit",
	"testDeviceAllocation.testTwoAllocations",
	"testDeviceDataMultiplexing.Self",
	"testDeviceFirmware.StateMachineTest",
	"testDeviceFirmware.PVsTest",
	"testDeviceFirmware.PVsTestInitialization",
	"testDeviceHQMonitor.stateMachine",
	"testDeviceHQMonitor.PVs",
	"testDeviceHQMonitor.PVsInitialization",
	"testDevicePVs.PVTypes",
	"testDevicePVs.PVTypesInit",
	"testDevicePVs.DataSharing",
	"testDevicePVs.PVUnsubscribe",
	"testDeviceStateMachine.stateMachine",
	"testDeviceStateMachine.stateMachineStructure",
	"testDeviceTimestamping.StateMachineTest",
	"testDeviceTimestamping.SetGetTest",
	"testDeviceTiming.fullTest",
	"testDeviceTiming.fullTestStructure",
	"testTrigAndClk.testSWTrig",
	"testTrigAndClk.testSWTrigInit",
	"testTrigAndClk.testConfigTrig",
	"testTrigAndClk.testConfigTrigInit",
	"testTrigAndClk.testPLLSync",
	"testTrigAndClk.testPLLSyncInit",
	"testTrigAndClk.testEnablePLL",
	"testTrigAndClk.testEnablePLLInit",
	"testTrigAndClk.testResetConfigTrigger",
	"testTrigAndClk.testResetConfigTriggerInit",
	"testTrigAndClk.testStateMachine_TrigAndClk",
	"testTrigAndClk.testStateMachine_TrigAndClk_RoutingNode",
	"testTrigAndClk.testClockSet",
	"testTrigAndClk.testTermSet",
	"testDigitalIO.testStateMachineBool",
	"testDigitalIO.testPushDataBool",
	"testDigitalIO.testPushDataBoolInit",
	"testDigitalIO.testStateMachineI8",
	"testDigitalIO.testPushDataI8",
	"testDigitalIO.testPushDataI8Init",
	"testDigitalIO.testStateMachineI16",
	"testDigitalIO.testPushDataI16",
	"testDigitalIO.testPushDataI16Init",
	"testDigitalIO.testStateMachineI32",
	"testDigitalIO.testPushDataI32",
	"testDigitalIO.testPushDataI32Init",
	"testDigitalIO.testStateMachineI64",
	"testDigitalIO.testPushDataI64",
	"testDigitalIO.testPushDataI64Init",
	"testFTE.testStateMachineFTE",
	"testFTE.testSetPVManaging",
	"testFTE.testSetPVManagingInit",
	"testFTE.testSuppressPVManaging",
	"testFTE.testSuppressPVManagingInit",
	"testFTE.testChgPeriodPVManaging",
	"testFTE.testChgPeriodPVManagingInit",
	"testFTE.testPendingAndMaximumPVManaging",
	"testFTE.testPendingAndMaximumPVManagingInit",
	"testIniParser.parseFile",
	"testIniParser.testEmptySectionAndComments",
	"testNamingRules.testDefaultRules",
	"testNamingRules.testFallbackRules",
	"testPVs.testVariable",
	"testPVs.testDelegate",
	"testPVs.testDelegateInitialized",
	"testPVs.testSubscription0",
	"testPVs.testSubscription1",
	"testPVs.testReplication",
	"testRouting.testStateMachineRouting",
	"testRouting.testClockSet",
	"testRouting.testClockSetInit",
	"testRouting.testTermSet",
	"testRouting.testTermSetInit",
	"testStateMachine.testLocalGlobalState",
	"testStateMachine.testNodeStates",
	"testStateMachine.testChildrenStates",
	"testStateMachineAutoEnable.testSuccesfulTransitionState",
	"testStateMachineAutoEnable.testErrorTransitionState",
	"testStateMachineAutoEnable.testAsynTransitionState",
	"testThreads.testThreads",
	"testWFG.testStateMachine",
	"testWFG.testPushDataGeneratedVDBL",
	"testWFG.testPushDataGeneratedVDBLInit",
	"testWFG.testPushDataGeneratedVI8",
	"testWFG.testPushDataGeneratedVI8Init",
	"testWFG.testPushDataGeneratedVUI8",
	"testWFG.testPushDataGeneratedVUI8Init",
	"testWFG.testPushDataGeneratedVI32",
	"testWFG.testPushDataGeneratedVI32Init",
	"testWFG.testPushDataGeneratedVI64",
	"testWFG.testPushDataGeneratedVI64Init",
	"testWFG.testPushDataGeneratedDBL",
	"testWFG.testPushDataGeneratedDBLInit",
	"testWFG.testPushDataGeneratedI32",
	"testWFG.testPushDataGeneratedI32Init",
	"testWFG.testPushDataGeneratedI64",
	"testWFG.testPushDataGeneratedI64Init",
	"testWFG.testdecimation",
	"testWFG.testdecimationInit",
	"testDeviceError.statusError",
}

var singleCases = []string{
	"testLogging.testLotOfPVs",
}

// Default returns the built-in catalogue: slow cases first, then fast cases,
// then the cases that can only run once.
func Default() domain.Catalogue {
	cat := make(domain.Catalogue, 0, len(slowCases)+len(fastCases)+len(singleCases))
	cat = appendTier(cat, slowCases, SlowRepeat)
	cat = appendTier(cat, fastCases, FastRepeat)
	cat = appendTier(cat, singleCases, SingleRepeat)
	return cat
}

func appendTier(cat domain.Catalogue, names []string, repeat int) domain.Catalogue {
	for _, name := range names {
		cat = append(cat, domain.TestCaseSpec{Identifier: name, RepeatCount: repeat})
	}
	return cat
}
