package questionbank

var occupationalSafetyPool = []Template{
	single(
		"Who is responsible for organising occupational safety at an enterprise?",
		"The employer is obliged to ensure safe working conditions and organise safety management.",
		right("The employer"),
		wrong("The employee"),
		wrong("The trade union"),
		wrong("The labour inspectorate"),
	),
	single(
		"When must an introductory safety briefing be conducted?",
		"The introductory briefing is held for every newly hired worker before they start work.",
		right("Before a newly hired employee starts work"),
		wrong("Within the first month of employment"),
		wrong("Only for hazardous professions"),
		wrong("Once a year for all staff"),
	),
	multiple(
		"Which of the following are types of workplace safety briefings?",
		"Introductory, initial, repeated, unscheduled and targeted briefings are all recognised types.",
		right("Initial briefing at the workplace"),
		right("Repeated briefing"),
		right("Unscheduled briefing"),
		wrong("Voluntary briefing"),
	),
	single(
		"How often must a repeated workplace briefing be conducted?",
		"Repeated briefings are held at least once every six months.",
		right("At least once every six months"),
		wrong("Once every two years"),
		wrong("Only after an accident"),
		wrong("Once every five years"),
	),
	single(
		"What must an employee do first when noticing a situation that threatens people's lives?",
		"The immediate supervisor must be informed so that the hazard can be eliminated.",
		right("Immediately inform the immediate supervisor"),
		wrong("Continue working and report at the end of the shift"),
		wrong("Write a complaint to the labour inspectorate"),
		wrong("Ignore it if it does not concern their own work"),
	),
	multiple(
		"Which documents confirm that a worker has been briefed on safety?",
		"Briefings are recorded in the briefing log with signatures of both the instructor and the worker.",
		right("An entry in the briefing log"),
		right("The signature of the person briefed"),
		wrong("A verbal confirmation from a colleague"),
		wrong("A record in the canteen visitor book"),
	),
	single(
		"Who pays for personal protective equipment issued to employees?",
		"Personal protective equipment is purchased and issued at the employer's expense.",
		right("The employer"),
		wrong("The employee"),
		wrong("The employee and employer in equal shares"),
		wrong("The social insurance fund"),
	),
}

var firstAidPool = []Template{
	single(
		"What is the first step when providing first aid at an accident scene?",
		"Before helping anyone, make sure the scene is safe for you and the casualty.",
		right("Make sure there is no danger to yourself and the casualty"),
		wrong("Move the casualty to a comfortable place"),
		wrong("Give the casualty water"),
		wrong("Apply a tourniquet"),
	),
	single(
		"What is the ratio of chest compressions to rescue breaths during adult CPR?",
		"Current guidelines recommend 30 compressions followed by 2 rescue breaths.",
		right("30 compressions to 2 breaths"),
		wrong("15 compressions to 1 breath"),
		wrong("5 compressions to 1 breath"),
		wrong("10 compressions to 2 breaths"),
	),
	single(
		"How should severe arterial bleeding from a limb be stopped?",
		"Arterial bleeding from a limb is stopped by direct pressure and, if needed, a tourniquet above the wound.",
		right("Apply a tourniquet above the wound and note the time"),
		wrong("Apply a tourniquet below the wound"),
		wrong("Rinse the wound with water and leave it open"),
		wrong("Apply a warm compress"),
	),
	multiple(
		"Which signs indicate that a casualty is not breathing normally?",
		"Absent chest movement and no breath sounds or only occasional gasps indicate abnormal breathing.",
		right("No chest movement"),
		right("Only occasional gasps"),
		wrong("Rapid blinking"),
		wrong("Complaints of thirst"),
	),
	single(
		"What should be done with a thermal burn before medical help arrives?",
		"Cool the burn under running cool water for at least 20 minutes.",
		right("Cool the burn with running cool water"),
		wrong("Apply oil or fat"),
		wrong("Pierce the blisters"),
		wrong("Cover with ice directly on the skin"),
	),
	single(
		"How long can a tourniquet be left on in warm weather?",
		"In warm weather a tourniquet should not stay on for more than one hour.",
		right("No more than 1 hour"),
		wrong("Up to 4 hours"),
		wrong("Until the casualty arrives at hospital, regardless of time"),
		wrong("No more than 10 minutes"),
	),
}

var fireSafetyPool = []Template{
	single(
		"What type of extinguisher must not be used on live electrical equipment?",
		"Water-based and foam extinguishers conduct electricity and must not be used on live equipment.",
		right("Water or foam extinguisher"),
		wrong("Carbon dioxide extinguisher"),
		wrong("Dry powder extinguisher"),
		wrong("Any extinguisher is acceptable"),
	),
	single(
		"What should you do first when you discover a fire?",
		"Raise the alarm and call the fire service before attempting anything else.",
		right("Raise the alarm and call the fire service"),
		wrong("Collect personal belongings"),
		wrong("Open all windows to ventilate the room"),
		wrong("Use the lift to evacuate quickly"),
	),
	multiple(
		"Which actions are prohibited during evacuation from a burning building?",
		"Lifts can fail during a fire and returning for belongings delays evacuation.",
		right("Using lifts"),
		right("Returning for personal belongings"),
		wrong("Moving along marked evacuation routes"),
		wrong("Covering the nose and mouth with a damp cloth"),
	),
	single(
		"How often must fire extinguishers be inspected?",
		"Extinguishers are checked at least once a year and recharged as required.",
		right("At least once a year"),
		wrong("Once every five years"),
		wrong("Only after use"),
		wrong("Inspection is not required"),
	),
	single(
		"Where must evacuation plans be displayed?",
		"Evacuation plans are posted in visible places on every floor.",
		right("In visible places on every floor"),
		wrong("Only in the director's office"),
		wrong("In the archive"),
		wrong("Only at the main entrance"),
	),
}

var workAtHeightPool = []Template{
	single(
		"From what height is work considered work at height?",
		"Work is classed as work at height when there is a risk of falling 1.8 m or more.",
		right("1.8 metres or more"),
		wrong("0.5 metres or more"),
		wrong("5 metres or more"),
		wrong("10 metres or more"),
	),
	single(
		"What must be checked before using a safety harness?",
		"The harness and lanyard must be inspected for damage before each use.",
		right("The integrity of straps, buckles and lanyard"),
		wrong("Only its colour"),
		wrong("The manufacturer's logo"),
		wrong("Nothing, if it was issued recently"),
	),
	multiple(
		"Which conditions require stopping outdoor work at height?",
		"Strong wind, thunderstorms, ice and poor visibility make work at height unsafe.",
		right("Wind speed of 15 m/s or more"),
		right("Thunderstorm"),
		right("Ice on working surfaces"),
		wrong("Cloudy weather without precipitation"),
	),
	single(
		"Where should the lanyard of a safety harness be attached?",
		"The lanyard is attached to a certified anchor point above the worker where possible.",
		right("To a certified anchor point, preferably above the worker"),
		wrong("To the nearest pipe"),
		wrong("To the worker's own belt"),
		wrong("To the ladder being used"),
	),
	single(
		"Who may perform work at height?",
		"Only trained workers with a medical clearance and an admission group may work at height.",
		right("Trained workers with medical clearance and the appropriate admission group"),
		wrong("Any worker over 18"),
		wrong("Only managers"),
		wrong("Anyone who volunteers"),
	),
}

var explosivesPool = []Template{
	single(
		"Who may handle explosive materials?",
		"Only persons with a blaster's certificate and appropriate training may handle explosives.",
		right("Persons holding a blaster's certificate"),
		wrong("Any mine worker"),
		wrong("The shift supervisor without training"),
		wrong("Warehouse staff"),
	),
	single(
		"What must be done before a blast is initiated?",
		"People are withdrawn beyond the danger zone and warning signals are given.",
		right("Withdraw people beyond the danger zone and give warning signals"),
		wrong("Inform only the supervisor"),
		wrong("Stop ventilation"),
		wrong("Nothing, if the charge is small"),
	),
	multiple(
		"Which are mandatory signals during blasting operations?",
		"The warning, firing and all-clear signals are mandatory.",
		right("Warning signal"),
		right("Firing signal"),
		right("All-clear signal"),
		wrong("Lunch break signal"),
	),
	single(
		"What should be done in the event of a misfire?",
		"A misfire is handled only by the blaster after the prescribed waiting time.",
		right("Wait the prescribed time and let the blaster eliminate the misfire"),
		wrong("Immediately approach and pull out the charge"),
		wrong("Resume drilling nearby"),
		wrong("Ignore it"),
	),
	single(
		"How must explosives and detonators be transported?",
		"Explosives and initiating devices are carried separately in designated containers.",
		right("Separately, in designated containers"),
		wrong("Together in one bag"),
		wrong("In workers' pockets"),
		wrong("In any available vehicle"),
	),
}

var undergroundMiningPool = []Template{
	single(
		"What must every worker carry when descending into a mine?",
		"A self-rescuer and a cap lamp are mandatory for everyone underground.",
		right("A self-rescuer and a cap lamp"),
		wrong("Only a mobile phone"),
		wrong("A fire extinguisher"),
		wrong("Nothing special"),
	),
	single(
		"What is the minimum oxygen concentration in mine air for workers to remain?",
		"Mine air must contain at least 20% oxygen by volume.",
		right("20% by volume"),
		wrong("15% by volume"),
		wrong("10% by volume"),
		wrong("25% by volume"),
	),
	multiple(
		"Which signs indicate a possible roof fall?",
		"Cracking, falling rock fragments and support deformation are warning signs.",
		right("Cracking sounds in the rock"),
		right("Small pieces of rock falling"),
		right("Deformation of supports"),
		wrong("Increase in air temperature by 1 degree"),
	),
	single(
		"What should a worker do upon detecting gas in a working?",
		"Stop work, leave to fresh air and report to the shift supervisor.",
		right("Stop work, leave to fresh air and report to the supervisor"),
		wrong("Continue working while wearing a mask"),
		wrong("Try to ventilate by waving clothes"),
		wrong("Light a match to check the gas"),
	),
	single(
		"Who may enter abandoned mine workings?",
		"Entry into abandoned workings is allowed only for mine rescue teams.",
		right("Only mine rescue teams"),
		wrong("Any experienced miner"),
		wrong("The shift supervisor alone"),
		wrong("Anyone with a cap lamp"),
	),
}

var otherPool = []Template{
	single(
		"What does a red prohibitory safety sign mean?",
		"Red round signs with a diagonal bar indicate a prohibition.",
		right("An action is prohibited"),
		wrong("A mandatory action"),
		wrong("A safe condition"),
		wrong("Fire equipment location"),
	),
	single(
		"What should be done with damaged power tools?",
		"Damaged tools are withdrawn from use and reported.",
		right("Stop using them and report to the supervisor"),
		wrong("Repair them yourself"),
		wrong("Continue using them carefully"),
		wrong("Hand them to a colleague"),
	),
	multiple(
		"Which factors are classed as harmful production factors?",
		"Noise, vibration and dust are typical harmful factors.",
		right("Noise"),
		right("Vibration"),
		right("Dust"),
		wrong("Natural daylight"),
	),
	single(
		"How long must a worker rest between shifts at minimum?",
		"The minimum uninterrupted rest between shifts prevents fatigue-related accidents.",
		right("At least 12 hours"),
		wrong("At least 4 hours"),
		wrong("At least 2 hours"),
		wrong("Rest is not regulated"),
	),
}

// generalPool is the fallback used for unknown topics.
var generalPool = concat(occupationalSafetyPool[:3], firstAidPool[:2])

func concat(parts ...[]Template) []Template {
	var n int
	for _, p := range parts {
		n += len(p)
	}
	out := make([]Template, 0, n)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}
