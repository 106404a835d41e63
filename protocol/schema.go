package protocol

// Field identifies a named control-table entry.
type Field int

// The full Dynamixel 2.0 control-table field catalog, in offset
// order. Field offsets/widths/signs are fixed by the protocol.
const (
	FieldModelNumber Field = iota
	FieldModelInformation
	FieldFirmwareVersion
	FieldID
	FieldBaudRate
	FieldReturnDelayTime
	FieldDriveMode
	FieldOperatingMode
	FieldSecondaryID
	FieldProtocolType
	FieldHomingOffset
	FieldMovingThreshold
	FieldTemperatureLimit
	FieldMaxVoltageLimit
	FieldMinVoltageLimit
	FieldPWMLimit
	FieldCurrentLimit
	FieldVelocityLimit
	FieldMaxPositionLimit
	FieldMinPositionLimit
	FieldStartupConfiguration
	FieldPWMSlope
	FieldShutdown
	FieldTorqueEnable
	FieldLED
	FieldStatusReturnLevel
	FieldRegisteredInstruction
	FieldHardwareErrorStatus
	FieldVelocityIGain
	FieldVelocityPGain
	FieldPositionDGain
	FieldPositionIGain
	FieldPositionPGain
	FieldFeedforward2ndGain
	FieldFeedforward1stGain
	FieldBusWatchdog
	FieldGoalPWM
	FieldGoalCurrent
	FieldGoalVelocity
	FieldProfileAcceleration
	FieldProfileVelocity
	FieldGoalPosition
	FieldRealtimeTick
	FieldMoving
	FieldMovingStatus
	FieldPresentPWM
	FieldPresentCurrent
	FieldPresentVelocity
	FieldPresentPosition
	FieldVelocityTrajectory
	FieldPositionTrajectory
	FieldPresentInputVoltage
	FieldPresentTemperature
	FieldBackupReady
	FieldIndirectAddress1
	FieldIndirectAddress2
	FieldIndirectAddress3
	FieldIndirectAddress4
	FieldIndirectAddress5
	FieldIndirectAddress6
	FieldIndirectAddress7
	FieldIndirectAddress8
	FieldIndirectAddress9
	FieldIndirectAddress10
	FieldIndirectAddress11
	FieldIndirectAddress12
	FieldIndirectAddress13
	FieldIndirectAddress14
	FieldIndirectAddress15
	FieldIndirectAddress16
	FieldIndirectAddress17
	FieldIndirectAddress18
	FieldIndirectAddress19
	FieldIndirectAddress20
	FieldIndirectData1
	FieldIndirectData2
	FieldIndirectData3
	FieldIndirectData4
	FieldIndirectData5
	FieldIndirectData6
	FieldIndirectData7
	FieldIndirectData8
	FieldIndirectData9
	FieldIndirectData10
	FieldIndirectData11
	FieldIndirectData12
	FieldIndirectData13
	FieldIndirectData14
	FieldIndirectData15
	FieldIndirectData16
	FieldIndirectData17
	FieldIndirectData18
	FieldIndirectData19
	FieldIndirectData20

	fieldCount
)

// Kind is the logical integer type a field is encoded as.
type Kind uint8

const (
	KindU8 Kind = iota
	KindU16
	KindU32
	KindI16
	KindI32
)

// Width returns the byte width of a Kind.
func (k Kind) Width() int {
	switch k {
	case KindU8:
		return 1
	case KindU16, KindI16:
		return 2
	case KindU32, KindI32:
		return 4
	default:
		return 0
	}
}

type fieldInfo struct {
	offset int
	kind   Kind
}

// StoreSize is the total addressable control-table size.
const StoreSize = 231

// schema is the static offset/type catalog, indexed by Field. Offsets
// and widths are fixed by the protocol, transcribed from the
// reference implementation's control-table layout.
//
// IndirectAddress20 is deliberately mapped to its own offset (206),
// not to IndirectAddress1's — the reference implementation's reader
// for that one field returns IndirectAddress1's data, which this
// schema does not reproduce.
var schema = [fieldCount]fieldInfo{
	FieldModelNumber:           {0, KindU16},
	FieldModelInformation:      {2, KindU32},
	FieldFirmwareVersion:       {6, KindU8},
	FieldID:                    {7, KindU8},
	FieldBaudRate:              {8, KindU8},
	FieldReturnDelayTime:       {9, KindU8},
	FieldDriveMode:             {10, KindU8},
	FieldOperatingMode:         {11, KindU8},
	FieldSecondaryID:           {12, KindU8},
	FieldProtocolType:          {13, KindU8},
	FieldHomingOffset:          {20, KindI32},
	FieldMovingThreshold:       {24, KindU32},
	FieldTemperatureLimit:      {31, KindU8},
	FieldMaxVoltageLimit:       {32, KindU16},
	FieldMinVoltageLimit:       {34, KindU16},
	FieldPWMLimit:              {36, KindU16},
	FieldCurrentLimit:          {38, KindU16},
	FieldVelocityLimit:         {44, KindU16},
	FieldMaxPositionLimit:      {48, KindU32},
	FieldMinPositionLimit:      {52, KindU32},
	FieldStartupConfiguration:  {60, KindU8},
	FieldPWMSlope:              {62, KindU8},
	FieldShutdown:              {63, KindU8},
	FieldTorqueEnable:          {64, KindU8},
	FieldLED:                   {65, KindU8},
	FieldStatusReturnLevel:     {68, KindU8},
	FieldRegisteredInstruction: {69, KindU8},
	FieldHardwareErrorStatus:   {70, KindU8},
	FieldVelocityIGain:         {76, KindU16},
	FieldVelocityPGain:         {78, KindU16},
	FieldPositionDGain:         {80, KindU16},
	FieldPositionIGain:         {82, KindU16},
	FieldPositionPGain:         {84, KindU16},
	FieldFeedforward2ndGain:    {88, KindU16},
	FieldFeedforward1stGain:    {90, KindU16},
	FieldBusWatchdog:           {98, KindU8},
	FieldGoalPWM:               {100, KindI16},
	FieldGoalCurrent:           {102, KindI16},
	FieldGoalVelocity:          {104, KindI32},
	FieldProfileAcceleration:   {108, KindU32},
	FieldProfileVelocity:       {112, KindU32},
	// GoalPosition/PresentPosition are i32 per this protocol's own
	// external-interface description; see DESIGN.md for the
	// discrepancy against the reference implementation's u32 typing.
	FieldGoalPosition:        {116, KindI32},
	FieldRealtimeTick:        {120, KindU16},
	FieldMoving:              {122, KindU8},
	FieldMovingStatus:        {123, KindU8},
	FieldPresentPWM:          {124, KindI16},
	FieldPresentCurrent:      {126, KindI16},
	FieldPresentVelocity:     {128, KindI32},
	FieldPresentPosition:     {132, KindI32},
	FieldVelocityTrajectory:  {136, KindI32},
	FieldPositionTrajectory:  {140, KindI32},
	FieldPresentInputVoltage: {144, KindU16},
	FieldPresentTemperature:  {146, KindU8},
	FieldBackupReady:         {147, KindU8},
	FieldIndirectAddress1:    {168, KindU16},
	FieldIndirectAddress2:    {170, KindU16},
	FieldIndirectAddress3:    {172, KindU16},
	FieldIndirectAddress4:    {174, KindU16},
	FieldIndirectAddress5:    {176, KindU16},
	FieldIndirectAddress6:    {178, KindU16},
	FieldIndirectAddress7:    {180, KindU16},
	FieldIndirectAddress8:    {182, KindU16},
	FieldIndirectAddress9:    {184, KindU16},
	FieldIndirectAddress10:   {186, KindU16},
	FieldIndirectAddress11:   {188, KindU16},
	FieldIndirectAddress12:   {190, KindU16},
	FieldIndirectAddress13:   {192, KindU16},
	FieldIndirectAddress14:   {194, KindU16},
	FieldIndirectAddress15:   {196, KindU16},
	FieldIndirectAddress16:   {198, KindU16},
	FieldIndirectAddress17:   {200, KindU16},
	FieldIndirectAddress18:   {202, KindU16},
	FieldIndirectAddress19:   {204, KindU16},
	FieldIndirectAddress20:   {206, KindU16},
	FieldIndirectData1:       {208, KindU8},
	FieldIndirectData2:       {209, KindU8},
	FieldIndirectData3:       {210, KindU8},
	FieldIndirectData4:       {211, KindU8},
	FieldIndirectData5:       {212, KindU8},
	FieldIndirectData6:       {213, KindU8},
	FieldIndirectData7:       {214, KindU8},
	FieldIndirectData8:       {215, KindU8},
	FieldIndirectData9:       {216, KindU8},
	FieldIndirectData10:      {217, KindU8},
	FieldIndirectData11:      {218, KindU8},
	FieldIndirectData12:      {219, KindU8},
	FieldIndirectData13:      {220, KindU8},
	FieldIndirectData14:      {221, KindU8},
	FieldIndirectData15:      {222, KindU8},
	FieldIndirectData16:      {223, KindU8},
	FieldIndirectData17:      {224, KindU8},
	FieldIndirectData18:      {225, KindU8},
	FieldIndirectData19:      {226, KindU8},
	FieldIndirectData20:      {227, KindU8},
}

// Offset returns the byte offset and width of a field.
func Offset(f Field) (offset, width int) {
	info := schema[f]
	return info.offset, info.kind.Width()
}
