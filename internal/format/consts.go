// Package format houses low-level layout constants and decoders for the three
// save-image generations and the 80-byte box record. The goal is to keep the
// byte-level knowledge in one place, allocation-free where possible, and
// independent from the public API so higher-level packages can orchestrate the
// data in a more ergonomic form.
package format

// ============================================================================
// Box Record (80 bytes, modern format)
// ============================================================================
//
//	Offset  Size  Description
//	------  ----  ----------------------------------------------------------
//	 0x00    4    Personality value (PID), encryption key input
//	 0x04    4    Combined owner id (trainer id low 16, secret id high 16)
//	 0x08   10    Nickname, proprietary charset, 0xFF fill
//	 0x12    2    Language / locale code
//	 0x14    7    Owner name, proprietary charset, 0xFF fill
//	 0x1B    1    Markings
//	 0x1C    2    Stored checksum over the 48 decrypted data bytes
//	 0x1E    2    Padding / unused
//	 0x20   48    Encrypted region: four 12-byte blocks, order keyed by PID
//
// All multi-byte fields are little-endian.
const (
	RecordSize = 80

	RecPIDOffset      = 0x00
	RecOTIDOffset     = 0x04
	RecNicknameOffset = 0x08
	RecNicknameLen    = 10
	RecLanguageOffset = 0x12
	RecOTNameOffset   = 0x14
	RecOTNameLen      = 7
	RecMarkingsOffset = 0x1B
	RecChecksumOffset = 0x1C
	RecPaddingOffset  = 0x1E
	RecCryptOffset    = 0x20
	RecCryptLen       = 48

	// CryptBlockSize is the size of one logical block inside the encrypted
	// region; CryptBlockCount blocks make up the full region.
	CryptBlockSize  = 12
	CryptBlockCount = 4

	// CryptWordCount is the number of 16-bit words covered by the record
	// checksum (RecCryptLen / 2).
	CryptWordCount = RecCryptLen / 2

	// PermutationCount is the number of distinct block orderings. The
	// ordering of a record is selected by PID % PermutationCount.
	PermutationCount = 24
)

// Logical block indices within the decrypted region.
const (
	BlockGrowth = iota
	BlockAttacks
	BlockCondition
	BlockMisc
)

// Growth block field offsets (relative to block start).
const (
	GrowthSpeciesOffset    = 0x00 // uint16, internal species index
	GrowthItemOffset       = 0x02 // uint16, held item index
	GrowthExperienceOffset = 0x04 // uint32
	GrowthPPBonusesOffset  = 0x08 // uint8, 2 bits per move
	GrowthFriendshipOffset = 0x09 // uint8
)

// Attacks block field offsets.
const (
	AttackMovesOffset = 0x00 // 4 x uint16
	AttackPPOffset    = 0x08 // 4 x uint8
	MoveSlots         = 4
)

// Condition block field offsets.
const (
	CondEffortOffset  = 0x00 // 6 x uint8: HP, Atk, Def, Spe, SpA, SpD
	CondContestOffset = 0x06 // 6 x uint8: cool, beauty, cute, smart, tough, feel
	StatCount         = 6
)

// Misc block field offsets and bit packings.
const (
	MiscStatusOffset   = 0x00 // uint8, pokérus status
	MiscLocationOffset = 0x01 // uint8, met location
	MiscOriginsOffset  = 0x02 // uint16, packed: see below
	MiscIVOffset       = 0x04 // uint32, packed: see below
	MiscRibbonsOffset  = 0x08 // uint32

	// Origins word: met level bits 0-6, ball bits 11-14, owner sex bit 15.
	OriginsMetLevelMask = 0x007F
	OriginsBallShift    = 11
	OriginsBallMask     = 0x7800
	OriginsOTSexBit     = 0x8000

	// IV word: 5 bits per stat (HP, Atk, Def, Spe, SpA, SpD), egg flag
	// bit 30, ability slot bit 31.
	IVBitsPerStat = 5
	IVStatMask    = 0x1F
	IVEggFlagBit  = 1 << 30
	IVAbilityBit  = 1 << 31
)

// Language codes stored in the record header. Seven values are known.
const (
	LangJapanese = 0x0201
	LangEnglish  = 0x0202
	LangFrench   = 0x0203
	LangItalian  = 0x0204
	LangGerman   = 0x0205
	LangKorean   = 0x0206
	LangSpanish  = 0x0207
)

// ============================================================================
// Sectioned Save Image (modern format, 128 KiB)
// ============================================================================
//
// The image holds two redundant 57,344-byte blocks, each 14 sectors of
// 4,096 bytes. A sector carries 0xFF4 bytes of payload+padding followed by a
// 12-byte footer:
//
//	Offset  Size  Description
//	------  ----  ----------------------------------------------------------
//	0xFF4    2    Section id (0..13)
//	0xFF6    2    Folded 16-bit checksum over SectionDataSize payload bytes
//	0xFF8    4    Signature, always 0x08012025
//	0xFFC    4    Monotonic save counter
//
// Sections 5..13 concatenate (ascending id) into the 9 x 0xF80 storage blob;
// the record stream starts 4 bytes into that blob.
const (
	SaveSize      = 0x20000
	EmuHeaderSize = 16

	SectorSize        = 0x1000
	SectorPayloadSize = 0xFF4
	SectorsPerBlock   = 14
	SaveBlockCount    = 2
	SaveBlockSize     = SectorsPerBlock * SectorSize // 57,344

	SectorIDOffset        = 0xFF4
	SectorChecksumOffset  = 0xFF6
	SectorSignatureOffset = 0xFF8
	SectorCounterOffset   = 0xFFC

	SectorSignature = 0x08012025

	// SectionDataSize is the per-section byte count covered by the folded
	// checksum and contributed to the storage blob.
	SectionDataSize = 0xF80

	StorageFirstSection  = 5
	StorageLastSection   = 13
	StorageSectionCount  = StorageLastSection - StorageFirstSection + 1
	StorageBlobSize      = StorageSectionCount * SectionDataSize
	StorageRecordsOffset = 4 // record stream starts past the current-box word

	BoxCount    = 14
	BoxCapacity = 30
	SlotCount   = BoxCount * BoxCapacity // 420
	BoxDataSize = SlotCount * RecordSize // 33,600
)

// ============================================================================
// Legacy Save Images (32 KiB, two older formats)
// ============================================================================
//
// Both legacy formats store boxes as:
//
//	Offset  Size       Description
//	------  ---------  ----------------------------------------------------
//	0x00    1          Occupied slot count (<= capacity)
//	0x01    cap+1      Species index list, 0xFF terminated
//	cap+2   cap*size   Fixed-size box records
//	...                Owner names, nicknames (11 bytes each)
//
// Multi-byte record fields are big-endian in both legacy formats.
const (
	LegacySaveSize = 0x8000

	// NormalizeTrailerMax is the largest trailing byte count tolerated when
	// normalizing an oversized legacy image (emulator footers).
	NormalizeTrailerMax = 512

	LegacyNameLen        = 11
	LegacyNameTerminator = 0x50
	LegacyListTerminator = 0xFF

	// PP bytes carry current PP in the low 6 bits and PP-Up count in the
	// high 2 bits; the PP-Up bits must be masked before comparisons.
	LegacyPPMask    = 0x3F
	LegacyPPUpShift = 6
)

// First legacy format (33-byte records).
const (
	Gen1BoxMonSize      = 33
	Gen1BoxCapacity     = 20
	Gen1CurrentBoxOff   = 0x30C0
	Gen1BoxBank2Off     = 0x4000
	Gen1BoxBank3Off     = 0x6000
	Gen1BoxesPerBank    = 6
	Gen1BoxSize         = 0x462
	Gen1PlayerNameOff   = 0x2598
	Gen1ChecksumStart   = 0x2598
	Gen1ChecksumEnd     = 0x3522 // inclusive
	Gen1ChecksumOffset  = 0x3523

	// Record field offsets (big-endian multi-byte values).
	Gen1SpeciesOffset = 0x00
	Gen1LevelOffset   = 0x03
	Gen1MovesOffset   = 0x08
	Gen1OTIDOffset    = 0x0C
	Gen1ExpOffset     = 0x0E // 24-bit
	Gen1DVOffset      = 0x1B // atk<<4|def, spe<<4|spc
	Gen1PPOffset      = 0x1D
)

// Second legacy format (32-byte records, adds a held item).
const (
	Gen2BoxMonSize      = 32
	Gen2BoxCapacity     = 20
	Gen2CurrentBoxOff   = 0x2D6C
	Gen2BoxBank2Off     = 0x4000
	Gen2BoxBank3Off     = 0x6000
	Gen2BoxesPerBank    = 7
	Gen2BoxSize         = 0x450
	Gen2PlayerNameOff   = 0x200B
	Gen2Checksum1Start  = 0x2009
	Gen2Checksum1End    = 0x2D68 // inclusive
	Gen2Checksum1Offset = 0x2D69
	Gen2Checksum2Start  = 0x0C6B
	Gen2Checksum2End    = 0x17EC // inclusive
	Gen2Checksum2Offset = 0x7E6D

	Gen2SpeciesOffset = 0x00
	Gen2ItemOffset    = 0x01
	Gen2MovesOffset   = 0x02
	Gen2OTIDOffset    = 0x06
	Gen2ExpOffset     = 0x08 // 24-bit
	Gen2DVOffset      = 0x15
	Gen2PPOffset      = 0x17
	Gen2LevelOffset   = 0x1F
)
