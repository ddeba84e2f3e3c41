package colorramp

// Relative red, green, and blue intensity of an ideal blackbody radiator,
// sampled every 100K from 1000K to 25000K. Derived from Tanner Helland's
// approximation and normalized so the 6500K row is exactly neutral.
const (
	tableMinTemp = 1000
	tableMaxTemp = 25000
	tableStep    = 100
)

var blackbody = [...][3]float64{
	{1.000000, 0.267287, 0.000000},
	{1.000000, 0.304596, 0.000000},
	{1.000000, 0.338657, 0.000000},
	{1.000000, 0.369989, 0.000000},
	{1.000000, 0.398999, 0.000000},
	{1.000000, 0.426006, 0.000000},
	{1.000000, 0.451269, 0.000000},
	{1.000000, 0.475001, 0.000000},
	{1.000000, 0.497375, 0.000000},
	{1.000000, 0.518540, 0.000000},
	{1.000000, 0.538618, 0.055607},
	{1.000000, 0.557717, 0.108407},
	{1.000000, 0.575927, 0.156609},
	{1.000000, 0.593328, 0.200951},
	{1.000000, 0.609988, 0.242005},
	{1.000000, 0.625967, 0.280226},
	{1.000000, 0.641320, 0.315979},
	{1.000000, 0.656093, 0.349563},
	{1.000000, 0.670330, 0.381228},
	{1.000000, 0.684066, 0.411180},
	{1.000000, 0.697337, 0.439595},
	{1.000000, 0.710172, 0.466624},
	{1.000000, 0.722600, 0.492395},
	{1.000000, 0.734646, 0.517020},
	{1.000000, 0.746331, 0.540597},
	{1.000000, 0.757679, 0.563212},
	{1.000000, 0.768706, 0.584939},
	{1.000000, 0.779431, 0.605847},
	{1.000000, 0.789870, 0.625994},
	{1.000000, 0.800038, 0.645433},
	{1.000000, 0.809949, 0.664214},
	{1.000000, 0.819615, 0.682379},
	{1.000000, 0.829048, 0.699967},
	{1.000000, 0.838259, 0.717014},
	{1.000000, 0.847258, 0.733552},
	{1.000000, 0.856055, 0.749610},
	{1.000000, 0.864659, 0.765216},
	{1.000000, 0.873077, 0.780395},
	{1.000000, 0.881318, 0.795168},
	{1.000000, 0.889390, 0.809558},
	{1.000000, 0.897298, 0.823584},
	{1.000000, 0.905050, 0.837263},
	{1.000000, 0.912651, 0.850612},
	{1.000000, 0.920107, 0.863648},
	{1.000000, 0.927424, 0.876383},
	{1.000000, 0.934607, 0.888833},
	{1.000000, 0.941660, 0.901009},
	{1.000000, 0.948589, 0.912923},
	{1.000000, 0.955397, 0.924586},
	{1.000000, 0.962088, 0.936008},
	{1.000000, 0.968667, 0.947200},
	{1.000000, 0.975138, 0.958170},
	{1.000000, 0.981503, 0.968928},
	{1.000000, 0.987766, 0.979480},
	{1.000000, 0.993931, 0.989835},
	{1.000000, 1.000000, 1.000000},
	{1.000000, 1.000000, 1.000000},
	{0.997714, 0.978898, 1.000000},
	{0.980124, 0.969077, 1.000000},
	{0.964867, 0.960495, 1.000000},
	{0.951420, 0.952884, 1.000000},
	{0.939417, 0.946050, 1.000000},
	{0.928592, 0.939854, 1.000000},
	{0.918744, 0.934191, 1.000000},
	{0.909719, 0.928977, 1.000000},
	{0.901397, 0.924150, 1.000000},
	{0.893681, 0.919657, 1.000000},
	{0.886493, 0.915456, 1.000000},
	{0.879769, 0.911513, 1.000000},
	{0.873456, 0.907799, 1.000000},
	{0.867508, 0.904290, 1.000000},
	{0.861889, 0.900964, 1.000000},
	{0.856564, 0.897805, 1.000000},
	{0.851507, 0.894796, 1.000000},
	{0.846694, 0.891925, 1.000000},
	{0.842102, 0.889180, 1.000000},
	{0.837714, 0.886550, 1.000000},
	{0.833513, 0.884027, 1.000000},
	{0.829485, 0.881603, 1.000000},
	{0.825617, 0.879270, 1.000000},
	{0.821897, 0.877021, 1.000000},
	{0.818315, 0.874852, 1.000000},
	{0.814862, 0.872758, 1.000000},
	{0.811529, 0.870732, 1.000000},
	{0.808308, 0.868771, 1.000000},
	{0.805193, 0.866871, 1.000000},
	{0.802177, 0.865029, 1.000000},
	{0.799255, 0.863241, 1.000000},
	{0.796420, 0.861505, 1.000000},
	{0.793670, 0.859816, 1.000000},
	{0.790997, 0.858174, 1.000000},
	{0.788400, 0.856575, 1.000000},
	{0.785873, 0.855018, 1.000000},
	{0.783414, 0.853500, 1.000000},
	{0.781019, 0.852020, 1.000000},
	{0.778684, 0.850575, 1.000000},
	{0.776408, 0.849165, 1.000000},
	{0.774187, 0.847787, 1.000000},
	{0.772019, 0.846440, 1.000000},
	{0.769901, 0.845123, 1.000000},
	{0.767832, 0.843835, 1.000000},
	{0.765809, 0.842574, 1.000000},
	{0.763831, 0.841339, 1.000000},
	{0.761895, 0.840130, 1.000000},
	{0.760001, 0.838945, 1.000000},
	{0.758145, 0.837783, 1.000000},
	{0.756328, 0.836644, 1.000000},
	{0.754547, 0.835526, 1.000000},
	{0.752801, 0.834430, 1.000000},
	{0.751089, 0.833353, 1.000000},
	{0.749409, 0.832296, 1.000000},
	{0.747761, 0.831258, 1.000000},
	{0.746143, 0.830238, 1.000000},
	{0.744554, 0.829235, 1.000000},
	{0.742994, 0.828250, 1.000000},
	{0.741461, 0.827281, 1.000000},
	{0.739955, 0.826327, 1.000000},
	{0.738474, 0.825390, 1.000000},
	{0.737018, 0.824467, 1.000000},
	{0.735586, 0.823558, 1.000000},
	{0.734178, 0.822664, 1.000000},
	{0.732792, 0.821783, 1.000000},
	{0.731428, 0.820916, 1.000000},
	{0.730085, 0.820061, 1.000000},
	{0.728763, 0.819219, 1.000000},
	{0.727461, 0.818389, 1.000000},
	{0.726179, 0.817571, 1.000000},
	{0.724916, 0.816764, 1.000000},
	{0.723671, 0.815969, 1.000000},
	{0.722444, 0.815184, 1.000000},
	{0.721234, 0.814410, 1.000000},
	{0.720042, 0.813647, 1.000000},
	{0.718866, 0.812893, 1.000000},
	{0.717706, 0.812149, 1.000000},
	{0.716562, 0.811415, 1.000000},
	{0.715434, 0.810690, 1.000000},
	{0.714320, 0.809975, 1.000000},
	{0.713221, 0.809268, 1.000000},
	{0.712136, 0.808570, 1.000000},
	{0.711065, 0.807880, 1.000000},
	{0.710007, 0.807199, 1.000000},
	{0.708963, 0.806525, 1.000000},
	{0.707931, 0.805860, 1.000000},
	{0.706913, 0.805202, 1.000000},
	{0.705906, 0.804552, 1.000000},
	{0.704912, 0.803910, 1.000000},
	{0.703929, 0.803274, 1.000000},
	{0.702958, 0.802646, 1.000000},
	{0.701999, 0.802025, 1.000000},
	{0.701050, 0.801410, 1.000000},
	{0.700112, 0.800802, 1.000000},
	{0.699185, 0.800200, 1.000000},
	{0.698268, 0.799605, 1.000000},
	{0.697361, 0.799016, 1.000000},
	{0.696464, 0.798434, 1.000000},
	{0.695577, 0.797857, 1.000000},
	{0.694699, 0.797286, 1.000000},
	{0.693831, 0.796721, 1.000000},
	{0.692971, 0.796161, 1.000000},
	{0.692121, 0.795607, 1.000000},
	{0.691280, 0.795059, 1.000000},
	{0.690447, 0.794516, 1.000000},
	{0.689623, 0.793978, 1.000000},
	{0.688807, 0.793445, 1.000000},
	{0.687999, 0.792917, 1.000000},
	{0.687199, 0.792395, 1.000000},
	{0.686407, 0.791877, 1.000000},
	{0.685622, 0.791364, 1.000000},
	{0.684845, 0.790855, 1.000000},
	{0.684076, 0.790351, 1.000000},
	{0.683314, 0.789852, 1.000000},
	{0.682559, 0.789357, 1.000000},
	{0.681811, 0.788867, 1.000000},
	{0.681070, 0.788381, 1.000000},
	{0.680336, 0.787899, 1.000000},
	{0.679608, 0.787421, 1.000000},
	{0.678887, 0.786947, 1.000000},
	{0.678173, 0.786478, 1.000000},
	{0.677465, 0.786012, 1.000000},
	{0.676763, 0.785550, 1.000000},
	{0.676067, 0.785092, 1.000000},
	{0.675377, 0.784638, 1.000000},
	{0.674694, 0.784188, 1.000000},
	{0.674016, 0.783741, 1.000000},
	{0.673343, 0.783298, 1.000000},
	{0.672677, 0.782858, 1.000000},
	{0.672016, 0.782422, 1.000000},
	{0.671360, 0.781989, 1.000000},
	{0.670710, 0.781560, 1.000000},
	{0.670066, 0.781134, 1.000000},
	{0.669426, 0.780711, 1.000000},
	{0.668792, 0.780291, 1.000000},
	{0.668162, 0.779875, 1.000000},
	{0.667538, 0.779462, 1.000000},
	{0.666919, 0.779052, 1.000000},
	{0.666304, 0.778645, 1.000000},
	{0.665695, 0.778241, 1.000000},
	{0.665090, 0.777840, 1.000000},
	{0.664489, 0.777442, 1.000000},
	{0.663893, 0.777046, 1.000000},
	{0.663302, 0.776654, 1.000000},
	{0.662715, 0.776264, 1.000000},
	{0.662133, 0.775878, 1.000000},
	{0.661555, 0.775493, 1.000000},
	{0.660981, 0.775112, 1.000000},
	{0.660411, 0.774733, 1.000000},
	{0.659846, 0.774357, 1.000000},
	{0.659284, 0.773984, 1.000000},
	{0.658727, 0.773613, 1.000000},
	{0.658174, 0.773244, 1.000000},
	{0.657624, 0.772878, 1.000000},
	{0.657079, 0.772515, 1.000000},
	{0.656537, 0.772153, 1.000000},
	{0.655999, 0.771795, 1.000000},
	{0.655465, 0.771438, 1.000000},
	{0.654934, 0.771084, 1.000000},
	{0.654407, 0.770732, 1.000000},
	{0.653884, 0.770383, 1.000000},
	{0.653364, 0.770036, 1.000000},
	{0.652848, 0.769691, 1.000000},
	{0.652335, 0.769348, 1.000000},
	{0.651826, 0.769007, 1.000000},
	{0.651319, 0.768669, 1.000000},
	{0.650817, 0.768332, 1.000000},
	{0.650317, 0.767998, 1.000000},
	{0.649821, 0.767666, 1.000000},
	{0.649328, 0.767335, 1.000000},
	{0.648838, 0.767007, 1.000000},
	{0.648351, 0.766681, 1.000000},
	{0.647868, 0.766357, 1.000000},
	{0.647387, 0.766034, 1.000000},
	{0.646910, 0.765714, 1.000000},
	{0.646435, 0.765395, 1.000000},
	{0.645963, 0.765079, 1.000000},
	{0.645495, 0.764764, 1.000000},
	{0.645029, 0.764451, 1.000000},
	{0.644566, 0.764140, 1.000000},
	{0.644105, 0.763831, 1.000000},
	{0.643648, 0.763523, 1.000000},
	{0.643193, 0.763217, 1.000000},
	{0.642741, 0.762913, 1.000000},
}
