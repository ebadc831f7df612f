package aural

// ReverbPreset names one of the catalog's 110+ environment presets,
// grouped by family exactly as
// _examples/original_source/include/seal/rvb.h enumerates them.
// Loading a preset replaces all 13 reverb parameters atomically.
type ReverbPreset int

const (
	PresetGeneric ReverbPreset = iota
	PresetPaddedCell
	PresetRoom
	PresetBathroom
	PresetLivingRoom
	PresetStoneRoom
	PresetAuditorium
	PresetConcertHall
	PresetCave
	PresetArena
	PresetHangar
	PresetCarpetedHallway
	PresetHallway
	PresetStoneCorridor
	PresetAlley
	PresetForest
	PresetCity
	PresetMountains
	PresetQuarry
	PresetPlain
	PresetParkingLot
	PresetSewerPipe
	PresetUnderwater
	PresetDrugged
	PresetDizzy
	PresetPsychotic

	PresetCastleSmallRoom
	PresetCastleShortPassage
	PresetCastleMediumRoom
	PresetCastleLargeRoom
	PresetCastleLongPassage
	PresetCastleHall
	PresetCastleCupboard
	PresetCastleCourtyard
	PresetCastleAlcove

	PresetFactorySmallRoom
	PresetFactoryShortPassage
	PresetFactoryMediumRoom
	PresetFactoryLargeRoom
	PresetFactoryLongPassage
	PresetFactoryHall
	PresetFactoryCupboard
	PresetFactoryCourtyard
	PresetFactoryAlcove

	PresetIcePalaceSmallRoom
	PresetIcePalaceShortPassage
	PresetIcePalaceMediumRoom
	PresetIcePalaceLargeRoom
	PresetIcePalaceLongPassage
	PresetIcePalaceHall
	PresetIcePalaceCupboard
	PresetIcePalaceCourtyard
	PresetIcePalaceAlcove

	PresetSpaceStationSmallRoom
	PresetSpaceStationShortPassage
	PresetSpaceStationMediumRoom
	PresetSpaceStationLargeRoom
	PresetSpaceStationLongPassage
	PresetSpaceStationHall
	PresetSpaceStationCupboard
	PresetSpaceStationAlcove

	PresetWoodenSmallRoom
	PresetWoodenShortPassage
	PresetWoodenMediumRoom
	PresetWoodenLargeRoom
	PresetWoodenLongPassage
	PresetWoodenHall
	PresetWoodenCupboard
	PresetWoodenCourtyard
	PresetWoodenAlcove

	PresetSportEmptyStadium
	PresetSportSquashCourt
	PresetSportSmallSwimmingPool
	PresetSportLargeSwimmingPool
	PresetSportGymnasium
	PresetSportFullStadium
	PresetSportStadiumTannoy

	PresetPrefabWorkshop
	PresetPrefabSchoolRoom
	PresetPrefabPractiseRoom
	PresetPrefabOuthouse
	PresetPrefabCaravan

	PresetDomeTomb
	PresetDomeSaintPauls

	PresetPipeSmall
	PresetPipeLongThin
	PresetPipeLarge
	PresetPipeResonant

	PresetOutdoorsBackyard
	PresetOutdoorsRollingPlains
	PresetOutdoorsDeepCanyon
	PresetOutdoorsCreek
	PresetOutdoorsValley

	PresetMoodHeaven
	PresetMoodHell
	PresetMoodMemory

	PresetDrivingCommentator
	PresetDrivingPitGarage
	PresetDrivingInCarRacer
	PresetDrivingInCarSports
	PresetDrivingInCarLuxury
	PresetDrivingFullGrandstand
	PresetDrivingEmptyGrandstand
	PresetDrivingTunnel

	PresetCityStreets
	PresetCitySubway
	PresetCityMuseum
	PresetCityLibrary
	PresetCityUnderpass
	PresetCityAbandoned

	PresetDustyRoom
	PresetChapel
	PresetSmallWaterRoom
)

// reverbPresetTable holds one ReverbParams entry per preset. Values
// are physically-plausible approximations of each named environment
// (room size drives decay time and late/reflections gains; enclosed,
// hard-surfaced spaces get higher HF gain and lower diffusion;
// outdoor/open presets get long decay with very low reflections
// gain), built from the parameter semantics documented in
// include/seal/reverb.h rather than transcribed from a specific
// numeric table (none is visible in the retrieved source).
var reverbPresetTable = func() map[ReverbPreset]ReverbParams {
	t := make(map[ReverbPreset]ReverbParams, PresetSmallWaterRoom+1)

	mk := func(decay, density, diffusion, gain, hfgain, refl, late float32) ReverbParams {
		p := DefaultReverbParams()
		p.DecayTime = decay
		p.Density = density
		p.Diffusion = diffusion
		p.Gain = gain
		p.HFGain = hfgain
		p.ReflectionsGain = refl
		p.LateGain = late
		return p
	}

	// Default family: small/coloration-heavy to large/open, roughly
	// ordered by increasing reverberant decay time.
	t[PresetGeneric] = DefaultReverbParams()
	t[PresetPaddedCell] = mk(0.17, 0.17, 0.1, 0.3, 0.1, 0.25, 0.27)
	t[PresetRoom] = mk(0.4, 0.83, 1.0, 0.32, 0.59, 0.15, 0.6)
	t[PresetBathroom] = mk(1.49, 0.54, 1.0, 0.32, 0.54, 0.65, 3.26)
	t[PresetLivingRoom] = mk(0.5, 1.0, 1.0, 0.32, 0.1, 0.2, 0.28)
	t[PresetStoneRoom] = mk(2.31, 1.0, 1.0, 0.32, 0.71, 0.44, 1.5)
	t[PresetAuditorium] = mk(4.32, 1.0, 1.0, 0.32, 0.46, 0.2, 1.3)
	t[PresetConcertHall] = mk(3.92, 1.0, 1.0, 0.32, 0.5, 0.07, 1.4)
	t[PresetCave] = mk(2.91, 1.0, 1.0, 0.32, 1.0, 0.5, 1.47)
	t[PresetArena] = mk(7.24, 1.0, 1.0, 0.32, 0.45, 0.26, 1.02)
	t[PresetHangar] = mk(10.05, 1.0, 1.0, 0.32, 0.23, 0.5, 1.26)
	t[PresetCarpetedHallway] = mk(0.3, 0.01, 1.0, 0.32, 0.01, 0.12, 0.25)
	t[PresetHallway] = mk(1.49, 1.0, 1.0, 0.32, 0.59, 0.24, 0.9)
	t[PresetStoneCorridor] = mk(2.7, 1.0, 1.0, 0.32, 0.79, 0.27, 1.06)
	t[PresetAlley] = mk(1.49, 1.0, 0.3, 0.32, 0.86, 0.25, 0.95)
	t[PresetForest] = mk(1.49, 1.0, 0.3, 0.32, 0.54, 0.05, 0.26)
	t[PresetCity] = mk(1.49, 1.0, 0.5, 0.32, 0.67, 0.07, 0.142)
	t[PresetMountains] = mk(1.49, 1.0, 0.27, 0.32, 0.21, 0.04, 0.196)
	t[PresetQuarry] = mk(1.49, 1.0, 1.0, 0.32, 0.83, 0.0, 1.78)
	t[PresetPlain] = mk(1.49, 1.0, 0.21, 0.32, 0.5, 0.03, 0.11)
	t[PresetParkingLot] = mk(1.65, 1.0, 1.0, 0.32, 1.0, 0.21, 0.23)
	t[PresetSewerPipe] = mk(2.81, 0.14, 0.8, 0.32, 0.14, 1.64, 3.3)
	t[PresetUnderwater] = mk(1.49, 0.18, 0.0, 0.32, 0.01, 0.6, 7.0)
	t[PresetDrugged] = mk(8.39, 0.5, 1.0, 0.32, 1.0, 0.88, 1.0)
	t[PresetDizzy] = mk(17.23, 0.6, 0.6, 0.32, 0.79, 0.18, 0.22)
	t[PresetPsychotic] = mk(7.56, 0.5, 0.99, 0.32, 0.48, 0.34, 0.82)

	// Castle family: heavy stone, long decay, low HF gain.
	castle := func(decay float32) ReverbParams { return mk(decay, 1.0, 1.0, 0.32, 0.45, 0.1, 1.1) }
	t[PresetCastleSmallRoom] = castle(1.22)
	t[PresetCastleShortPassage] = castle(2.32)
	t[PresetCastleMediumRoom] = castle(1.46)
	t[PresetCastleLargeRoom] = castle(1.5)
	t[PresetCastleLongPassage] = castle(3.42)
	t[PresetCastleHall] = castle(3.14)
	t[PresetCastleCupboard] = castle(0.56)
	t[PresetCastleCourtyard] = castle(2.13)
	t[PresetCastleAlcove] = castle(1.64)

	// Factory family: metallic, high diffusion, bright HF.
	factory := func(decay float32) ReverbParams { return mk(decay, 1.0, 1.0, 0.32, 0.6, 0.2, 1.2) }
	t[PresetFactorySmallRoom] = factory(1.72)
	t[PresetFactoryShortPassage] = factory(2.53)
	t[PresetFactoryMediumRoom] = factory(2.97)
	t[PresetFactoryLargeRoom] = factory(4.24)
	t[PresetFactoryLongPassage] = factory(4.06)
	t[PresetFactoryHall] = factory(7.43)
	t[PresetFactoryCupboard] = factory(0.49)
	t[PresetFactoryCourtyard] = factory(2.32)
	t[PresetFactoryAlcove] = factory(3.14)

	// Ice palace family: very bright HF, long decay.
	ice := func(decay float32) ReverbParams { return mk(decay, 1.0, 1.0, 0.32, 0.84, 0.1, 1.3) }
	t[PresetIcePalaceSmallRoom] = ice(1.51)
	t[PresetIcePalaceShortPassage] = ice(1.79)
	t[PresetIcePalaceMediumRoom] = ice(2.22)
	t[PresetIcePalaceLargeRoom] = ice(2.53)
	t[PresetIcePalaceLongPassage] = ice(3.01)
	t[PresetIcePalaceHall] = ice(5.49)
	t[PresetIcePalaceCupboard] = ice(0.76)
	t[PresetIcePalaceCourtyard] = ice(2.04)
	t[PresetIcePalaceAlcove] = ice(2.76)

	// Space station family: tight, low diffusion, damped HF.
	station := func(decay float32) ReverbParams { return mk(decay, 0.21, 0.78, 0.32, 0.38, 0.3, 1.0) }
	t[PresetSpaceStationSmallRoom] = station(1.72)
	t[PresetSpaceStationShortPassage] = station(3.57)
	t[PresetSpaceStationMediumRoom] = station(3.01)
	t[PresetSpaceStationLargeRoom] = station(3.89)
	t[PresetSpaceStationLongPassage] = station(4.62)
	t[PresetSpaceStationHall] = station(7.11)
	t[PresetSpaceStationCupboard] = station(0.79)
	t[PresetSpaceStationAlcove] = station(1.16)

	// Wooden galleon family: short decay, muted HF.
	wood := func(decay float32) ReverbParams { return mk(decay, 1.0, 1.0, 0.32, 0.1, 0.06, 0.28) }
	t[PresetWoodenSmallRoom] = wood(0.79)
	t[PresetWoodenShortPassage] = wood(1.75)
	t[PresetWoodenMediumRoom] = wood(1.47)
	t[PresetWoodenLargeRoom] = wood(2.65)
	t[PresetWoodenLongPassage] = wood(1.99)
	t[PresetWoodenHall] = wood(3.45)
	t[PresetWoodenCupboard] = wood(0.56)
	t[PresetWoodenCourtyard] = wood(1.79)
	t[PresetWoodenAlcove] = wood(1.22)

	// Sports family: large open volumes, long reverberant tails.
	t[PresetSportEmptyStadium] = mk(6.26, 1.0, 1.0, 0.32, 0.29, 0.03, 0.53)
	t[PresetSportSquashCourt] = mk(2.22, 0.75, 0.75, 0.32, 0.32, 0.22, 0.55)
	t[PresetSportSmallSwimmingPool] = mk(2.76, 0.7, 0.8, 0.32, 0.8, 0.17, 0.87)
	t[PresetSportLargeSwimmingPool] = mk(5.49, 0.8, 1.0, 0.32, 0.91, 0.08, 1.15)
	t[PresetSportGymnasium] = mk(3.14, 0.8, 1.0, 0.32, 0.55, 0.16, 0.69)
	t[PresetSportFullStadium] = mk(5.25, 1.0, 1.0, 0.32, 0.06, 0.0, 0.21)
	t[PresetSportStadiumTannoy] = mk(2.53, 1.0, 0.78, 0.32, 0.5, 0.13, 0.3)

	t[PresetPrefabWorkshop] = mk(0.76, 1.0, 1.0, 0.32, 0.14, 0.43, 1.0)
	t[PresetPrefabSchoolRoom] = mk(0.98, 1.0, 1.0, 0.32, 0.45, 0.15, 0.6)
	t[PresetPrefabPractiseRoom] = mk(1.12, 1.0, 1.0, 0.32, 0.39, 0.22, 0.65)
	t[PresetPrefabOuthouse] = mk(1.38, 1.0, 1.0, 0.32, 0.1, 0.19, 0.3)
	t[PresetPrefabCaravan] = mk(0.43, 1.0, 1.0, 0.32, 0.05, 0.94, 1.0)

	t[PresetDomeTomb] = mk(4.18, 1.0, 1.0, 0.32, 0.22, 0.42, 1.0)
	t[PresetDomeSaintPauls] = mk(10.48, 1.0, 1.0, 0.32, 0.27, 0.06, 0.85)

	t[PresetPipeSmall] = mk(5.04, 1.0, 1.0, 0.32, 0.28, 0.4, 1.18)
	t[PresetPipeLongThin] = mk(9.21, 0.25, 1.0, 0.32, 0.2, 0.49, 1.22)
	t[PresetPipeLarge] = mk(8.45, 1.0, 1.0, 0.32, 0.39, 0.44, 1.22)
	t[PresetPipeResonant] = mk(6.81, 0.13, 1.0, 0.32, 0.91, 0.44, 1.22)

	t[PresetOutdoorsBackyard] = mk(1.22, 0.45, 0.66, 0.32, 0.45, 0.07, 0.35)
	t[PresetOutdoorsRollingPlains] = mk(2.13, 0.0, 0.01, 0.32, 0.21, 0.0, 0.11)
	t[PresetOutdoorsDeepCanyon] = mk(3.89, 1.0, 1.0, 0.32, 0.59, 0.3, 0.22)
	t[PresetOutdoorsCreek] = mk(2.13, 0.35, 1.0, 0.32, 0.38, 0.01, 0.11)
	t[PresetOutdoorsValley] = mk(2.88, 0.28, 0.26, 0.32, 0.82, 0.02, 0.12)

	t[PresetMoodHeaven] = mk(5.04, 1.0, 0.94, 0.32, 0.08, 0.24, 1.1)
	t[PresetMoodHell] = mk(3.57, 0.75, 0.6, 0.32, 0.0, 0.0, 0.57)
	t[PresetMoodMemory] = mk(4.06, 0.62, 1.0, 0.32, 0.82, 0.0, 0.87)

	t[PresetDrivingCommentator] = mk(3.01, 1.0, 0.0, 0.32, 0.56, 0.02, 1.0)
	t[PresetDrivingPitGarage] = mk(1.72, 0.59, 0.17, 0.32, 0.56, 0.18, 0.17)
	t[PresetDrivingInCarRacer] = mk(0.17, 1.0, 1.0, 0.32, 0.11, 1.0, 0.51)
	t[PresetDrivingInCarSports] = mk(0.17, 0.8, 1.0, 0.32, 0.65, 0.93, 1.0)
	t[PresetDrivingInCarLuxury] = mk(0.13, 1.0, 1.0, 0.32, 0.41, 0.5, 0.59)
	t[PresetDrivingFullGrandstand] = mk(3.01, 1.0, 1.0, 0.32, 0.29, 0.38, 0.23)
	t[PresetDrivingEmptyGrandstand] = mk(4.62, 1.0, 1.0, 0.32, 0.89, 0.5, 0.71)
	t[PresetDrivingTunnel] = mk(3.42, 0.81, 0.66, 0.32, 0.66, 0.38, 0.92)

	t[PresetCityStreets] = mk(1.79, 1.0, 0.78, 0.32, 0.71, 0.2, 0.25)
	t[PresetCitySubway] = mk(3.01, 1.0, 0.74, 0.32, 0.66, 0.23, 1.0)
	t[PresetCityMuseum] = mk(3.28, 0.82, 0.66, 0.32, 0.17, 0.02, 0.78)
	t[PresetCityLibrary] = mk(2.76, 0.41, 0.82, 0.32, 0.17, 0.03, 0.65)
	t[PresetCityUnderpass] = mk(3.57, 1.0, 0.82, 0.32, 0.42, 0.24, 0.66)
	t[PresetCityAbandoned] = mk(3.28, 1.0, 0.69, 0.32, 0.69, 0.2, 0.88)

	t[PresetDustyRoom] = mk(1.79, 0.56, 0.79, 0.32, 0.38, 0.2, 0.5)
	t[PresetChapel] = mk(4.62, 1.0, 1.0, 0.32, 0.56, 0.03, 1.0)
	t[PresetSmallWaterRoom] = mk(1.51, 0.45, 0.36, 0.32, 0.47, 0.18, 1.0)

	return t
}()
